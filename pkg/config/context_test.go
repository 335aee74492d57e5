package config

import (
	"context"
	"testing"
	"time"

	"github.com/matryer/is"
)

func TestFromContextMissing(t *testing.T) {
	is := is.New(t)
	is.True(FromContext(context.TODO()) == nil)
}

func TestFromContext(t *testing.T) {
	is := is.New(t)
	cfg := DefaultConfig()
	cfg.API.URL = "http://bridge.local:9000/api"
	cfg.UI.ToastDuration = time.Second
	ctx := WithContext(context.TODO(), cfg)

	got := FromContext(ctx)
	is.Equal(got, cfg)
	is.Equal(got.API.URL, "http://bridge.local:9000/api")
	is.Equal(got.UI.ToastDuration, time.Second)
}
