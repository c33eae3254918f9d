package cache

const (
	TagBrands          = "brands"
	TagCategories      = "categories"
	TagSOP             = "sop"
	TagKnowledge       = "knowledge"
	TagQualityTraining = "quality-training"
	TagAnnouncements   = "announcements"
	TagAgents          = "agents"
)

// tagsByTable is the single place that says which cached reads a table feeds.
// Any write to a listed table drops the matching tags.
var tagsByTable = map[string][]string{
	"brands":          {TagBrands, TagCategories},
	"categories":      {TagBrands, TagCategories},
	"subcategories":   {TagBrands, TagCategories},
	"products":        {TagBrands, TagCategories},
	"product_details": {TagBrands, TagCategories},

	"sop_categories": {TagSOP},
	"sops":           {TagSOP},
	"sop_variants":   {TagSOP},
	"sop_steps":      {TagSOP},

	"knowledges":                     {TagKnowledge},
	"knowledge_details":              {TagKnowledge},
	"knowledge_detail_variants":      {TagKnowledge},
	"knowledge_detail_variant_items": {TagKnowledge},

	"quality_trainings":           {TagQualityTraining},
	"quality_training_variants":   {TagQualityTraining},
	"quality_training_details":    {TagQualityTraining},
	"quality_training_subdetails": {TagQualityTraining},

	"announcements": {TagAnnouncements},

	"agents":              {TagAgents},
	"performance_records": {TagAgents},
}

func TagsFor(table string) []string {
	return tagsByTable[table]
}

// Tables lists every table with cached readers, for startup checks.
func Tables() []string {
	out := make([]string, 0, len(tagsByTable))
	for t := range tagsByTable {
		out = append(out, t)
	}
	return out
}
