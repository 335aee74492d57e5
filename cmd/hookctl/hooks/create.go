package hooks

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/wabridge/hookctl/cmd"
	"github.com/wabridge/hookctl/pkg/client"
	"github.com/wabridge/hookctl/pkg/webhook"
)

// errInvalidTrigger is returned when a --trigger flag cannot be parsed.
var errInvalidTrigger = errors.New("invalid trigger")

// webhookFlags are the flags shared by create and update.
type webhookFlags struct {
	name     string
	url      string
	secret   string
	enabled  bool
	triggers []string
}

func (f *webhookFlags) register(c *cobra.Command) {
	types := make([]string, 0)
	for _, t := range webhook.TriggerTypes() {
		types = append(types, string(t))
	}
	c.Flags().StringVarP(&f.name, "name", "n", "", "webhook name")
	c.Flags().StringVarP(&f.url, "url", "u", "", "URL the bridge delivers to")
	c.Flags().StringVarP(&f.secret, "secret", "s", "", "secret used to sign deliveries")
	c.Flags().BoolVarP(&f.enabled, "enabled", "e", true, "whether the webhook is enabled")
	c.Flags().StringArrayVarP(&f.triggers, "trigger", "t", nil,
		fmt.Sprintf("trigger as `TYPE[:MATCH][=VALUE]`, can be repeated; types are (%s)", strings.Join(types, ", ")))
}

// apply overrides the draft with the flags set on the command line.
func (f *webhookFlags) apply(c *cobra.Command, d *webhook.Draft) error {
	flags := c.Flags()
	if flags.Changed("name") {
		d.Name = f.name
	}
	if flags.Changed("url") {
		d.URL = f.url
	}
	if flags.Changed("secret") {
		d.Secret = f.secret
	}
	if flags.Changed("enabled") {
		d.Enabled = f.enabled
	}
	if flags.Changed("trigger") {
		d.Triggers = make([]webhook.TriggerInput, 0, len(f.triggers))
		for _, s := range f.triggers {
			in, err := parseTrigger(s)
			if err != nil {
				return err
			}
			d.Triggers = append(d.Triggers, in)
		}
	}
	return nil
}

// parseTrigger parses "TYPE[:MATCH][=VALUE]".
func parseTrigger(s string) (webhook.TriggerInput, error) {
	head, value, _ := strings.Cut(s, "=")
	typ, match, hasMatch := strings.Cut(head, ":")

	t, err := webhook.ParseTriggerType(typ)
	if err != nil {
		return webhook.TriggerInput{}, fmt.Errorf("%w %q: %w", errInvalidTrigger, s, err)
	}
	m := webhook.MatchExact
	if hasMatch {
		m, err = webhook.ParseMatchType(match)
		if err != nil {
			return webhook.TriggerInput{}, fmt.Errorf("%w %q: %w", errInvalidTrigger, s, err)
		}
	}

	return webhook.TriggerInput{Type: t, Value: value, Match: m}, nil
}

func createCommand() *cobra.Command {
	var flags webhookFlags
	c := &cobra.Command{
		Use:   "create",
		Short: "Create a webhook",
		Long: "Create a webhook.\n\n" +
			"Without --trigger, the webhook gets a single trigger matching all messages.",
		Example: "  hookctl create --name orders --url https://example.com/hook --trigger keyword:contains=order",
		Args:    cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			ctx := c.Context()
			d := webhook.NewDraft()
			if err := flags.apply(c, &d); err != nil {
				return err
			}

			w, err := d.Submission()
			if err != nil {
				return err
			}

			created, err := client.FromContext(ctx).CreateWebhook(ctx, w)
			if err != nil {
				return fmt.Errorf("failed to create webhook: %w", err)
			}

			fmt.Fprintln(c.OutOrStdout(), "Webhook created successfully")
			if created.ID != 0 {
				fmt.Fprintf(c.OutOrStdout(), "ID: %d\n", created.ID)
			}
			return nil
		},
	}

	flags.register(c)

	return c
}

func updateCommand() *cobra.Command {
	var flags webhookFlags
	c := &cobra.Command{
		Use:   "update ID",
		Short: "Update a webhook",
		Long: "Update a webhook.\n\n" +
			"Only the fields given as flags change. Passing --trigger replaces all triggers.",
		Args: cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			ctx := c.Context()
			id, err := cmd.ParseID(args[0])
			if err != nil {
				return err
			}

			cl := client.FromContext(ctx)
			w, err := lookup(ctx, cl, id)
			if err != nil {
				return err
			}

			d := webhook.DraftFrom(w)
			if err := flags.apply(c, &d); err != nil {
				return err
			}

			w, err = d.Submission()
			if err != nil {
				return err
			}

			if _, err := cl.UpdateWebhook(ctx, id, w); err != nil {
				return fmt.Errorf("failed to update webhook: %w", err)
			}

			fmt.Fprintln(c.OutOrStdout(), "Webhook updated successfully")
			return nil
		},
	}

	flags.register(c)

	return c
}
