package cmd

import (
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

func logLevelFlag(v *viper.Viper) string {
	return v.GetString("log.level")
}

func addLogLevelFlag(flags *pflag.FlagSet, v *viper.Viper) {
	flags.String("log-level", "info", "log level")
	_ = v.BindPFlag("log.level", flags.Lookup("log-level"))
	_ = v.BindEnv("log.level", "LOG_LEVEL")
}

func logFormatFlag(v *viper.Viper) string {
	return v.GetString("log.format")
}

func addLogFormatFlag(flags *pflag.FlagSet, v *viper.Viper) {
	flags.String("log-format", "json", "log format")
	_ = v.BindPFlag("log.format", flags.Lookup("log-format"))
	_ = v.BindEnv("log.format", "LOG_FORMAT")
}

func contentFlag(v *viper.Viper) string {
	return v.GetString("content")
}

func addContentFlag(flags *pflag.FlagSet, v *viper.Viper) {
	flags.String("content", "", "Path to the generated content JSON; fallback copy is used when empty or malformed")
	_ = v.BindPFlag("content", flags.Lookup("content"))
	_ = v.BindEnv("content", "PAGEMINT_CONTENT")
}

func templateFlag(v *viper.Viper) string {
	return v.GetString("template")
}

func addTemplateFlag(flags *pflag.FlagSet, v *viper.Viper) {
	flags.String("template", "modern", "Template id (modern, classic, bold, premium, conversion, enterprise)")
	_ = v.BindPFlag("template", flags.Lookup("template"))
	_ = v.BindEnv("template", "PAGEMINT_TEMPLATE")
}

func nicheFlag(v *viper.Viper) string {
	return v.GetString("niche")
}

func addNicheFlag(flags *pflag.FlagSet, v *viper.Viper) {
	flags.String("niche", "", "Product niche used for fallback copy")
	_ = v.BindPFlag("niche", flags.Lookup("niche"))
	_ = v.BindEnv("niche", "PAGEMINT_NICHE")
}

func audienceFlag(v *viper.Viper) string {
	return v.GetString("audience")
}

func addAudienceFlag(flags *pflag.FlagSet, v *viper.Viper) {
	flags.String("audience", "", "Target audience used for fallback copy")
	_ = v.BindPFlag("audience", flags.Lookup("audience"))
	_ = v.BindEnv("audience", "PAGEMINT_AUDIENCE")
}

func primaryLinkFlag(v *viper.Viper) string {
	return v.GetString("link.primary")
}

func addPrimaryLinkFlag(flags *pflag.FlagSet, v *viper.Viper) {
	flags.String("primary-link", "", "Affiliate destination URL used by every CTA (required)")
	_ = v.BindPFlag("link.primary", flags.Lookup("primary-link"))
	_ = v.BindEnv("link.primary", "PAGEMINT_PRIMARY_LINK")
}

func sectionLinksFlag(v *viper.Viper) map[string]string {
	return v.GetStringMapString("link.sections")
}

func addSectionLinksFlag(flags *pflag.FlagSet, v *viper.Viper) {
	flags.StringToString("section-links", nil, "Per-section link overrides (hero=URL,benefits=URL,final=URL)")
	_ = v.BindPFlag("link.sections", flags.Lookup("section-links"))
}

func outDirFlag(v *viper.Viper) string {
	return v.GetString("out_dir")
}

func addOutDirFlag(flags *pflag.FlagSet, v *viper.Viper) {
	flags.String("out-dir", "dist", "Directory to write rendered bundles to")
	_ = v.BindPFlag("out_dir", flags.Lookup("out-dir"))
	_ = v.BindEnv("out_dir", "PAGEMINT_OUT_DIR")
}

func siteNameFlag(v *viper.Viper) string {
	return v.GetString("site.name")
}

func addSiteNameFlag(flags *pflag.FlagSet, v *viper.Viper) {
	flags.String("site-name", "", "Display name of the website; normalized into the hosting site name")
	_ = v.BindPFlag("site.name", flags.Lookup("site-name"))
	_ = v.BindEnv("site.name", "PAGEMINT_SITE_NAME")
}

func siteIDFlag(v *viper.Viper) string {
	return v.GetString("site.id")
}

func addSiteIDFlag(flags *pflag.FlagSet, v *viper.Viper) {
	flags.String("site-id", "", "Deploy to an already provisioned site instead of resolving by name")
	_ = v.BindPFlag("site.id", flags.Lookup("site-id"))
	_ = v.BindEnv("site.id", "PAGEMINT_SITE_ID")
}

func customDomainFlag(v *viper.Viper) string {
	return v.GetString("site.custom_domain")
}

func addCustomDomainFlag(flags *pflag.FlagSet, v *viper.Viper) {
	flags.String("custom-domain", "", "Custom domain to attach on first provisioning")
	_ = v.BindPFlag("site.custom_domain", flags.Lookup("custom-domain"))
	_ = v.BindEnv("site.custom_domain", "PAGEMINT_CUSTOM_DOMAIN")
}

func netlifyTokenFlag(v *viper.Viper) string {
	return v.GetString("netlify.token")
}

func addNetlifyTokenFlag(flags *pflag.FlagSet, v *viper.Viper) {
	flags.String("netlify-token", "", "Netlify personal access token")
	_ = v.BindPFlag("netlify.token", flags.Lookup("netlify-token"))
	_ = v.BindEnv("netlify.token", "PAGEMINT_NETLIFY_TOKEN")
}

func netlifyAPIURLFlag(v *viper.Viper) string {
	return v.GetString("netlify.api_url")
}

func addNetlifyAPIURLFlag(flags *pflag.FlagSet, v *viper.Viper) {
	flags.String("netlify-api-url", "", "Override the Netlify API base URL")
	_ = v.BindPFlag("netlify.api_url", flags.Lookup("netlify-api-url"))
	_ = v.BindEnv("netlify.api_url", "PAGEMINT_NETLIFY_API_URL")
}

func dryRunFlag(v *viper.Viper) bool {
	return v.GetBool("dry_run")
}

func addDryRunFlag(flags *pflag.FlagSet, v *viper.Viper) {
	flags.Bool("dry-run", false, "Publish against an in-memory provider instead of Netlify")
	_ = v.BindPFlag("dry_run", flags.Lookup("dry-run"))
}

func waitFlag(v *viper.Viper) bool {
	return v.GetBool("wait")
}

func addWaitFlag(flags *pflag.FlagSet, v *viper.Viper) {
	flags.Bool("wait", false, "Poll the deployment until it reaches a terminal state")
	_ = v.BindPFlag("wait", flags.Lookup("wait"))
}

func waitTimeoutFlag(v *viper.Viper) time.Duration {
	return v.GetDuration("wait_timeout")
}

func addWaitTimeoutFlag(flags *pflag.FlagSet, v *viper.Viper) {
	flags.Duration("wait-timeout", 5*time.Minute, "How long to poll before reporting the deploy as still building")
	_ = v.BindPFlag("wait_timeout", flags.Lookup("wait-timeout"))
	_ = v.BindEnv("wait_timeout", "PAGEMINT_WAIT_TIMEOUT")
}

func pollIntervalFlag(v *viper.Viper) time.Duration {
	return v.GetDuration("poll.interval")
}

func addPollIntervalFlag(flags *pflag.FlagSet, v *viper.Viper) {
	flags.Duration("poll-interval", 2*time.Second, "Initial interval between deployment status polls")
	_ = v.BindPFlag("poll.interval", flags.Lookup("poll-interval"))
	_ = v.BindEnv("poll.interval", "PAGEMINT_POLL_INTERVAL")
}

func archiveBucketFlag(v *viper.Viper) string {
	return v.GetString("archive.bucket")
}

func addArchiveBucketFlag(flags *pflag.FlagSet, v *viper.Viper) {
	flags.String("archive-bucket", "", "Blob bucket URL to archive published bundles to (gs://, s3://, azblob://)")
	_ = v.BindPFlag("archive.bucket", flags.Lookup("archive-bucket"))
	_ = v.BindEnv("archive.bucket", "PAGEMINT_ARCHIVE_BUCKET")
}

func archivePrefixFlag(v *viper.Viper) string {
	return v.GetString("archive.prefix")
}

func addArchivePrefixFlag(flags *pflag.FlagSet, v *viper.Viper) {
	flags.String("archive-prefix", "", "Key prefix within the archive bucket")
	_ = v.BindPFlag("archive.prefix", flags.Lookup("archive-prefix"))
	_ = v.BindEnv("archive.prefix", "PAGEMINT_ARCHIVE_PREFIX")
}

func addressFlag(v *viper.Viper) string {
	return v.GetString("address")
}

func addAddressFlag(flags *pflag.FlagSet, v *viper.Viper) {
	flags.String("address", ":8080", "Address to bind to (host:port)")
	_ = v.BindPFlag("address", flags.Lookup("address"))
	_ = v.BindEnv("address", "PAGEMINT_ADDRESS")
}

func dirFlag(v *viper.Viper) string {
	return v.GetString("dir")
}

func addDirFlag(flags *pflag.FlagSet, v *viper.Viper) {
	flags.String("dir", "", "Directory of the rendered bundle to preview")
	_ = v.BindPFlag("dir", flags.Lookup("dir"))
	_ = v.BindEnv("dir", "PAGEMINT_DIR")
}

func serviceHealthzEnabledFlag(v *viper.Viper) bool {
	return v.GetBool("service.healthz.enabled")
}

func addServiceHealthzEnabledFlag(flags *pflag.FlagSet, v *viper.Viper) {
	flags.Bool("service-healthz-enabled", false, "Enable healthz service")
	_ = v.BindPFlag("service.healthz.enabled", flags.Lookup("service-healthz-enabled"))
}

func servicePrometheusEnabledFlag(v *viper.Viper) bool {
	return v.GetBool("service.prometheus.enabled")
}

func addServicePrometheusEnabledFlag(flags *pflag.FlagSet, v *viper.Viper) {
	flags.Bool("service-prometheus-enabled", false, "Enable prometheus service")
	_ = v.BindPFlag("service.prometheus.enabled", flags.Lookup("service-prometheus-enabled"))
}
