package views

// Static landing-page content. Every section on the marketing pages is
// composed from these pools; nothing here is fetched or generated at
// request time.

// Feature is one card in a features grid.
type Feature struct {
	Icon        string
	Title       string
	Description string
}

// Stat is one entry in a stats band.
type Stat struct {
	Value string
	Label string
}

// Testimonial is one quote in the testimonial rotation.
type Testimonial struct {
	Quote   string
	Author  string
	Role    string
	Company string
}

// FAQ is one question/answer pair in an accordion.
type FAQ struct {
	Question string
	Answer   string
}

// VerticalContent is the full content set for one industry vertical page.
type VerticalContent struct {
	Slug        string
	Name        string
	Tagline     string
	Description string
	Features    []Feature
	Stats       []Stat
	Testimonial Testimonial
	FAQs        []FAQ
}

var verticals = map[string]VerticalContent{
	"b2b": {
		Slug:        "b2b",
		Name:        "B2B Marketing",
		Tagline:     "Pipelines, not impressions",
		Description: "Demand generation built around the buying committee: positioning, outbound sequences, and content that sales actually uses.",
		Features: []Feature{
			{Icon: "🎯", Title: "Account-based campaigns", Description: "Target the fifty accounts that matter instead of renting reach you do not keep."},
			{Icon: "🧲", Title: "Demand capture", Description: "Search, review sites, and comparison pages tuned for buyers already in motion."},
			{Icon: "🤝", Title: "Sales enablement", Description: "One-pagers, decks, and objection banks your reps will actually open."},
		},
		Stats: []Stat{
			{Value: "3.4x", Label: "average pipeline growth"},
			{Value: "41%", Label: "lower cost per opportunity"},
			{Value: "60+", Label: "B2B programs shipped"},
		},
		Testimonial: Testimonial{
			Quote:   "They rebuilt our outbound from scratch. Six months later half our pipeline starts with a campaign they run.",
			Author:  "Maya Lindqvist",
			Role:    "VP Revenue",
			Company: "Fjordline Systems",
		},
		FAQs: []FAQ{
			{Question: "How long until we see pipeline?", Answer: "Capture programs show movement in four to six weeks; creation programs compound over a quarter."},
			{Question: "Do you work with our SDR team?", Answer: "Yes. We write the sequences, your team sends them, and we review replies together weekly."},
		},
	},
	"seo": {
		Slug:        "seo",
		Name:        "SEO & Content",
		Tagline:     "Rank for what converts",
		Description: "Technical cleanup, topic architecture, and editorial production aimed at queries with revenue behind them.",
		Features: []Feature{
			{Icon: "🔍", Title: "Technical audits", Description: "Crawl budget, Core Web Vitals, and index hygiene fixed in priority order."},
			{Icon: "🗺️", Title: "Topic architecture", Description: "Clusters planned from search data so every article has a job."},
			{Icon: "✍️", Title: "Editorial production", Description: "Briefed, written, and reviewed content shipped on a steady cadence."},
		},
		Stats: []Stat{
			{Value: "212%", Label: "median organic growth, year one"},
			{Value: "850+", Label: "articles shipped"},
			{Value: "12", Label: "industries covered"},
		},
		Testimonial: Testimonial{
			Quote:   "Organic went from a rounding error to our cheapest channel. The topic map alone was worth the engagement.",
			Author:  "Daniel Okafor",
			Role:    "Head of Growth",
			Company: "Ledgerly",
		},
		FAQs: []FAQ{
			{Question: "Do you write the content or do we?", Answer: "Either. We can run full production or hand your team briefs and edit what comes back."},
			{Question: "What about AI-generated content?", Answer: "We use models for drafts and research, never for publishing unreviewed. Every piece gets a human editor."},
		},
	},
	"branding": {
		Slug:        "branding",
		Name:        "Branding & Identity",
		Tagline:     "Look like you mean it",
		Description: "Positioning, naming, visual identity, and the guidelines that keep all of it consistent after launch.",
		Features: []Feature{
			{Icon: "🧭", Title: "Positioning", Description: "A sharp answer to why you over the incumbent, written before any pixels move."},
			{Icon: "🎨", Title: "Visual identity", Description: "Logo, type, color, and motion as one system, not a logo file and vibes."},
			{Icon: "📘", Title: "Brand guidelines", Description: "Living documentation your next hire can apply without asking anyone."},
		},
		Stats: []Stat{
			{Value: "40+", Label: "brands launched"},
			{Value: "9", Label: "rebrand award shortlists"},
			{Value: "2wk", Label: "typical sprint to first concepts"},
		},
		Testimonial: Testimonial{
			Quote:   "The rebrand paid for itself at the next fundraise. Investors quoted our own positioning back to us.",
			Author:  "Sofia Marchetti",
			Role:    "Founder",
			Company: "Hearthstack",
		},
		FAQs: []FAQ{
			{Question: "Will you work with our in-house designer?", Answer: "Gladly. We set the system and direction; in-house teams usually run with it better than anyone."},
			{Question: "How many concepts do we see?", Answer: "Two or three deliberate directions, not a wall of options. More choices make worse decisions."},
		},
	},
	"automation": {
		Slug:        "automation",
		Name:        "Marketing Automation",
		Tagline:     "Ship the boring parts",
		Description: "Lifecycle email, lead routing, CRM hygiene, and AI-assisted workflows that remove the manual glue work.",
		Features: []Feature{
			{Icon: "⚙️", Title: "Lifecycle programs", Description: "Onboarding, nurture, and win-back flows mapped to how customers actually behave."},
			{Icon: "🔀", Title: "Lead routing", Description: "Scoring and assignment rules that get the right rep on a demo within minutes."},
			{Icon: "🤖", Title: "AI workflows", Description: "Drafting, enrichment, and triage handled by models with humans on approval."},
		},
		Stats: []Stat{
			{Value: "18h", Label: "saved per marketer, weekly"},
			{Value: "5min", Label: "median speed-to-lead"},
			{Value: "120+", Label: "automations in production"},
		},
		Testimonial: Testimonial{
			Quote:   "Every handoff that used to live in someone's head is now a workflow. Nothing falls through anymore.",
			Author:  "Priya Raman",
			Role:    "Marketing Ops Lead",
			Company: "Cobalt Freight",
		},
		FAQs: []FAQ{
			{Question: "Which tools do you build on?", Answer: "Whatever you run. Most engagements touch a CRM, an email platform, Zapier or native workflows, and a model API."},
			{Question: "Is the AI workflow demo real?", Answer: "The generator on this site calls a live model when configured, and falls back to a canned example when not."},
		},
	},
}

// Vertical returns the content for one vertical slug.
func Vertical(slug string) (VerticalContent, bool) {
	v, ok := verticals[slug]
	return v, ok
}

// homeStats is the stats band on the home page.
var homeStats = []Stat{
	{Value: "120+", Label: "clients served"},
	{Value: "8", Label: "years in business"},
	{Value: "4", Label: "service verticals"},
}

// homeTestimonials rotate on the home page.
var homeTestimonials = []Testimonial{
	{
		Quote:   "One agency for brand, content, and the automation that ties it together. We stopped juggling vendors.",
		Author:  "Jonas Weber",
		Role:    "CMO",
		Company: "Arcline Health",
	},
	{
		Quote:   "The workflow generator sold us before the first call did. They build what they demo.",
		Author:  "Amara Diallo",
		Role:    "COO",
		Company: "Verdant Labs",
	},
}
