package yaml

import "time"

// Defaults.
const (
	DefaultBaseURL       = "https://www.longbeachny.gov"
	DefaultMaxPages      = 500
	DefaultDelay         = 2 * time.Second
	DefaultTimeout       = 30 * time.Second
	DefaultDocumentsPath = "processing_results.json"
	DefaultPagesPath     = "longbeach_complete_scrape.json"
	DefaultReportPath    = "scraping_report.json"
	DefaultDatabasePath  = "newsroom.db"
	DefaultAgendaDir     = "2025_city_council_agendas"
	DefaultFreshness     = 24 * time.Hour
	DefaultSearchLimit   = 3
	DefaultContextRadius = 100

	// DefaultRequestsPerMinute matches the Gemini free-tier quota.
	DefaultRequestsPerMinute = 10
)

// ApplyDefaults sets default values for any zero values in cfg.
func ApplyDefaults(cfg *Config) {
	if cfg.Crawl.BaseURL == "" {
		cfg.Crawl.BaseURL = DefaultBaseURL
	}
	if cfg.Crawl.SectionPaths == nil {
		cfg.Crawl.SectionPaths = DefaultSectionPaths()
	}
	if cfg.Crawl.MaxPages == 0 {
		cfg.Crawl.MaxPages = DefaultMaxPages
	}
	if cfg.Crawl.Delay == 0 {
		cfg.Crawl.Delay = DefaultDelay
	}
	if cfg.Crawl.Timeout == 0 {
		cfg.Crawl.Timeout = DefaultTimeout
	}
	if cfg.Storage.Backend == "" {
		cfg.Storage.Backend = BackendJSON
	}
	if cfg.Storage.DocumentsPath == "" {
		cfg.Storage.DocumentsPath = DefaultDocumentsPath
	}
	if cfg.Storage.PagesPath == "" {
		cfg.Storage.PagesPath = DefaultPagesPath
	}
	if cfg.Storage.ReportPath == "" {
		cfg.Storage.ReportPath = DefaultReportPath
	}
	if cfg.Storage.DatabasePath == "" {
		cfg.Storage.DatabasePath = DefaultDatabasePath
	}
	if cfg.Ingest.AgendaDir == "" {
		cfg.Ingest.AgendaDir = DefaultAgendaDir
	}
	if cfg.Ingest.Freshness == 0 {
		cfg.Ingest.Freshness = DefaultFreshness
	}
	if cfg.Ingest.Dedup == nil {
		t := true
		cfg.Ingest.Dedup = &t
	}
	if cfg.Search.Limit == 0 {
		cfg.Search.Limit = DefaultSearchLimit
	}
	if cfg.Search.ContextRadius == 0 {
		cfg.Search.ContextRadius = DefaultContextRadius
	}
	if cfg.Summarizer.RequestsPerMinute == 0 {
		cfg.Summarizer.RequestsPerMinute = DefaultRequestsPerMinute
	}
}

// DefaultSectionPaths returns the site sections seeded into every crawl.
func DefaultSectionPaths() []string {
	return []string{
		"/",

		"/government",
		"/government/boards-commissions",
		"/government/budget-financial-information",
		"/government/city-council-meetings",
		"/government/city-officials",
		"/government/city-officials/city-council",
		"/government/city-officials/city-manager",
		"/government/city-officials/city-court-judges",
		"/government/charter-code-of-ordinances",
		"/government/public-notices",
		"/government/transparency-portal",

		"/departments",
		"/departments/animal-control",
		"/departments/beach-maintenance",
		"/departments/beach-park",
		"/departments/building",
		"/departments/city-clerk",
		"/departments/city-comptroller",
		"/departments/city-court",
		"/departments/civil-service",
		"/departments/community-development",
		"/departments/corporation-counsel",
		"/departments/economic-development-planning",
		"/departments/emergency-management",
		"/departments/events",
		"/departments/fire",
		"/departments/ice-arena",
		"/departments/lifeguard-patrol",
		"/departments/municipal-building",
		"/departments/planning-board",
		"/departments/parks-and-recreation",
		"/departments/police-department",
		"/departments/public-relations",
		"/departments/public-works",
		"/departments/public-works/park-avenue-resilient-connectivity-project",
		"/departments/public-works/residential-water-meter-replacement-project",
		"/departments/purchasing",
		"/departments/sanitation-recycling",
		"/departments/sewer-maintenance",
		"/departments/street-maintenance",
		"/departments/tax-assessor",
		"/departments/tax-department",
		"/departments/transportation",
		"/departments/water-pollution-plant",
		"/departments/water-purification-plant",
		"/departments/water-purification-plant/drinking-water-quality-report",
		"/departments/water-sewer-administration",
		"/departments/water-transmission",
		"/departments/zoning-board-of-appeals",
		"/departments/department-listing",

		"/community",
		"/community/accessibility",
		"/community/beach",
		"/community/building-permits",
		"/community/comprehensive-plan",
		"/community/empire-wind-project",
		"/community/genasys-alert",
		"/community/jobs",
		"/community/licenses-records-ceremonies",
		"/community/online-payments",
		"/community/parks-recreation",
		"/community/preparedness",
		"/community/public-safety",
		"/community/public-safety/police-department",
		"/community/public-safety/fire-department",
		"/community/public-safety/lifeguards",
		"/community/sanitation-recycling",
		"/community/seniors",
		"/community/superblock-engel-burman-project",
		"/community/transportation",
		"/community/school-bus-safety-program",

		"/business",
		"/business/applying-for-a-mercantile-license",
		"/business/become-an-ocean-friendly-restaurant",
		"/business/business-resources",
		"/business/chamber-of-commerce",
		"/business/co-working-space",
		"/business/commercial-energy-rebates",
		"/business/economic-development-homepage",
		"/business/rfps-vendor-registration",
		"/business/sign-up-for-business-notifications",
		"/business/long-beach-businesses",

		"/how-do-i",
		"/how-do-i/access",
		"/how-do-i/apply-for",
		"/how-do-i/contact",
		"/how-do-i/find-out-about",
		"/how-do-i/pay-for",
		"/how-do-i/sign-up-for",
		"/how-do-i/stay-connected",
		"/how-do-i/faq",

		"/explore",
		"/explore/welcome",
		"/explore/about",
		"/explore/history",
		"/explore/eat-play-surf-shop",
		"/explore/places-of-worship",
		"/explore/the-long-beach-chamber-of-commerce",
		"/explore/long-beach-public-library",
		"/explore/long-beach-school-district",

		"/quick-connect/bus-schedule",
		"/quick-connect/calendar-of-events",
		"/quick-connect/transparency-portal",
		"/quick-connect/recycling",
		"/quick-connect/downloadable-forms",

		"/online-payments",
		"/calendar",
		"/news",
		"/site-map",
		"/accessibility",
		"/contact-us",
	}
}
