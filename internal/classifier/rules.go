package classifier

// Rule — метка и список слов-триггеров, каждый найденный триггер даёт +1 к счёту.
type Rule struct {
	Label    string
	Keywords []string
}

// RuleSet — три независимые таблицы правил. Порядок объявления значим:
// при равном счёте побеждает метка, объявленная раньше.
type RuleSet struct {
	Categories []Rule
	Projects   []Rule
	Teams      []Rule
}

// Метки по умолчанию, когда ни один триггер не сработал.
const (
	DefaultCategory = "Uncategorized"
	DefaultProject  = "General"
	DefaultTeam     = "General"
)

// DefaultRules — таблицы ключевых слов маркетингового домена.
// Загружаются один раз на старте процесса и передаются в классификатор явно.
func DefaultRules() RuleSet {
	return RuleSet{
		Categories: []Rule{
			{Label: "Campaign", Keywords: []string{"campaign", "marketing", "promotion", "advertisement", "advert", "ad", "launch"}},
			{Label: "Brand", Keywords: []string{"brand", "branding", "identity", "logo", "guideline", "style"}},
			{Label: "Content", Keywords: []string{"content", "blog", "article", "post", "social", "media"}},
			{Label: "Strategy", Keywords: []string{"strategy", "plan", "planning", "roadmap", "objective", "goal"}},
			{Label: "Analytics", Keywords: []string{"analytics", "report", "data", "metric", "kpi", "performance", "insight"}},
			{Label: "Sales", Keywords: []string{"sales", "pitch", "proposal", "client", "customer", "deal"}},
			{Label: "Product", Keywords: []string{"product", "feature", "specification", "requirement"}},
			{Label: "Event", Keywords: []string{"event", "conference", "webinar", "workshop", "meeting"}},
			{Label: "Research", Keywords: []string{"research", "study", "survey", "analysis", "findings"}},
			{Label: "Design", Keywords: []string{"design", "mockup", "wireframe", "prototype", "ui", "ux"}},
		},
		Projects: []Rule{
			{Label: "Q1 Campaign", Keywords: []string{"q1", "quarter", "january", "february", "march"}},
			{Label: "Q2 Campaign", Keywords: []string{"q2", "april", "may", "june"}},
			{Label: "Q3 Campaign", Keywords: []string{"q3", "july", "august", "september"}},
			{Label: "Q4 Campaign", Keywords: []string{"q4", "october", "november", "december"}},
			{Label: "Product Launch", Keywords: []string{"launch", "release", "new product"}},
			{Label: "Brand Refresh", Keywords: []string{"refresh", "rebrand", "update brand"}},
		},
		Teams: []Rule{
			{Label: "Marketing", Keywords: []string{"marketing", "campaign", "promotion"}},
			{Label: "Content", Keywords: []string{"content", "blog", "copy", "writing"}},
			{Label: "Design", Keywords: []string{"design", "creative", "visual", "graphic"}},
			{Label: "Analytics", Keywords: []string{"analytics", "data", "report", "metric"}},
			{Label: "Sales", Keywords: []string{"sales", "revenue", "client", "customer"}},
		},
	}
}
