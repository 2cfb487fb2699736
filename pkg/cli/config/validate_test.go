package config_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/urfave/cli/v3"

	"github.com/m-mizutani/uatcomment/pkg/cli/config"
)

func flagNames(flags []cli.Flag) map[string]bool {
	names := make(map[string]bool)
	for _, flag := range flags {
		if n := flag.Names(); len(n) > 0 {
			names[n[0]] = true
		}
	}
	return names
}

func TestGitHub_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     config.GitHub
		wantErr int
	}{
		{
			name: "token",
			cfg:  config.GitHub{Token: "ghp_xxx"},
		},
		{
			name:    "nothing set",
			cfg:     config.GitHub{},
			wantErr: 1,
		},
		{
			name: "complete App credentials",
			cfg: config.GitHub{
				AppID:          1,
				InstallationID: 2,
				PrivateKey:     "pem",
			},
		},
		{
			name:    "App ID only",
			cfg:     config.GitHub{AppID: 1},
			wantErr: 2,
		},
		{
			name:    "App credentials override token check",
			cfg:     config.GitHub{Token: "ghp_xxx", PrivateKey: "pem"},
			wantErr: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := tt.cfg.Validate()
			gt.Number(t, len(errs)).Equal(tt.wantErr)
		})
	}
}

func TestGitHub_NewClient(t *testing.T) {
	t.Run("token", func(t *testing.T) {
		cfg := &config.GitHub{Token: "ghp_xxx", APIURL: "https://ghe.example.com/api/v3"}
		client, err := cfg.NewClient()
		gt.NoError(t, err)
		gt.Value(t, client).NotNil()
	})

	t.Run("invalid App key", func(t *testing.T) {
		cfg := &config.GitHub{AppID: 1, InstallationID: 2, PrivateKey: "not a key"}
		_, err := cfg.NewClient()
		gt.Error(t, err)
	})
}

func TestAction_Validate(t *testing.T) {
	cfg := config.Action{TemplateName: "uat.md"}
	errs := cfg.Validate()
	gt.Number(t, len(errs)).Equal(1)
	gt.String(t, errs[0].Error()).Contains("GITHUB_EVENT_PATH")

	cfg.EventPath = "/tmp/event.json"
	gt.Number(t, len(cfg.Validate())).Equal(0)
}

func TestAction_Template(t *testing.T) {
	dir, name := (&config.Action{}).Template()
	gt.Value(t, dir).Equal(".github/workflows")
	gt.Value(t, name).Equal("uat.md")

	dir, name = (&config.Action{TemplateDir: "docs", TemplateName: "release.md"}).Template()
	gt.Value(t, dir).Equal("docs")
	gt.Value(t, name).Equal("release.md")
}

func TestAction_Flags(t *testing.T) {
	cfg := &config.Action{}
	names := flagNames(cfg.Flags())
	for _, name := range []string{"event-path", "template-dir", "template", "output-path", "dry-run"} {
		gt.True(t, names[name])
	}
}

func TestValidate_AggregatesErrors(t *testing.T) {
	err := config.Validate(&config.GitHub{}, &config.Action{})
	gt.Error(t, err)

	msg := err.Error()
	gt.String(t, msg).Contains("invalid configuration")
	gt.String(t, msg).Contains("GITHUB_TOKEN")
	gt.String(t, msg).Contains("GITHUB_EVENT_PATH")
}

func TestValidate_OK(t *testing.T) {
	err := config.Validate(
		&config.GitHub{Token: "ghp_xxx"},
		&config.Action{EventPath: "/tmp/event.json", TemplateName: "uat.md"},
	)
	gt.NoError(t, err)
}
