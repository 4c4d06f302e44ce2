package cmd

import (
	"os"
	"time"

	keelhttp "github.com/foomo/keel/net/http"
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/pagemint/pagemint/content"
	"github.com/pagemint/pagemint/hosting"
	"github.com/pagemint/pagemint/hosting/mock"
	"github.com/pagemint/pagemint/hosting/netlify"
	"github.com/pagemint/pagemint/render"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func buildLinks(v *viper.Viper) render.Links {
	links := render.Links{
		render.PlacementPrimary: primaryLinkFlag(v),
	}
	for placement, url := range sectionLinksFlag(v) {
		links[placement] = url
	}
	return links
}

func buildFallbackContext(v *viper.Viper) content.FallbackContext {
	return content.FallbackContext{
		Niche:          nicheFlag(v),
		TargetAudience: audienceFlag(v),
		ProductURL:     primaryLinkFlag(v),
	}
}

// loadContent reads the generated content file. An unset path is not an
// error: the validator falls back to generated copy.
func loadContent(path string) ([]byte, error) {
	if path == "" {
		return nil, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read content file")
	}
	return data, nil
}

func newProvider(l *zap.Logger, v *viper.Viper) (hosting.Provider, error) {
	if dryRunFlag(v) {
		l.Info("dry run, using in-memory hosting provider")
		return mock.New(), nil
	}
	token := netlifyTokenFlag(v)
	if token == "" {
		return nil, errors.New("a Netlify token is required, see --netlify-token / PAGEMINT_NETLIFY_TOKEN")
	}
	opts := []netlify.Option{
		netlify.WithHTTPClient(
			keelhttp.NewHTTPClient(
				keelhttp.HTTPClientWithTimeout(30 * time.Second),
			),
		),
	}
	if u := netlifyAPIURLFlag(v); u != "" {
		opts = append(opts, netlify.WithBaseURL(u))
	}
	return netlify.New(l, token, opts...), nil
}

func printJSON(value interface{}) error {
	out, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(append(out, '\n'))
	return err
}
