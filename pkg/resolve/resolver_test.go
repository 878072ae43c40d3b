package resolve_test

import (
	"context"
	"testing"

	"github.com/goliatone/go-flavour/pkg/resolve"
)

func TestResolver_Prepare(t *testing.T) {
	tests := []struct {
		name     string
		flavour  string
		options  []resolve.Option
		template string
		want     string
	}{
		{
			name:     "no flavour passes through",
			flavour:  "",
			template: "index.html",
			want:     "index.html",
		},
		{
			name:     "flavour prepends segment",
			flavour:  "mobile",
			template: "index.html",
			want:     "mobile/index.html",
		},
		{
			name:     "prefix prepends to flavoured name",
			flavour:  "mobile",
			options:  []resolve.Option{resolve.WithPrefix("flavours/")},
			template: "index.html",
			want:     "flavours/mobile/index.html",
		},
		{
			name:     "prefix ignored without flavour",
			flavour:  "",
			options:  []resolve.Option{resolve.WithPrefix("flavours/")},
			template: "index.html",
			want:     "index.html",
		},
		{
			name:     "disabled prefix is not applied",
			flavour:  "mobile",
			options:  []resolve.Option{resolve.WithPrefix("flavours/"), resolve.WithPrefixEnabled(false)},
			template: "index.html",
			want:     "mobile/index.html",
		},
		{
			name:     "nested template names keep their path",
			flavour:  "tablet",
			template: "shop/cart/summary.html",
			want:     "tablet/shop/cart/summary.html",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := resolve.New(resolve.Static(tc.flavour), tc.options...)
			if got := r.Prepare(context.Background(), tc.template); got != tc.want {
				t.Fatalf("Prepare(%q) = %q, want %q", tc.template, got, tc.want)
			}
		})
	}
}

func TestResolver_ContextSource(t *testing.T) {
	r := resolve.New(nil)

	ctx := resolve.WithFlavour(context.Background(), "mobile")
	if got := r.Prepare(ctx, "index.html"); got != "mobile/index.html" {
		t.Fatalf("Prepare with context flavour = %q, want %q", got, "mobile/index.html")
	}

	if got := r.Prepare(context.Background(), "index.html"); got != "index.html" {
		t.Fatalf("Prepare without context flavour = %q, want %q", got, "index.html")
	}
}

func TestFromContext(t *testing.T) {
	if got := resolve.FromContext(context.Background()); got != "" {
		t.Fatalf("FromContext on empty context = %q, want empty", got)
	}
	ctx := resolve.WithFlavour(context.Background(), "tablet")
	if got := resolve.FromContext(ctx); got != "tablet" {
		t.Fatalf("FromContext = %q, want %q", got, "tablet")
	}
}
