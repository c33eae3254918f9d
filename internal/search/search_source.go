package search

import (
	"fmt"
	"strings"
)

// Source describes how one entity type is queried and mapped to a Hit.
// Select must alias its columns to the Row fields (id, title, description,
// slug, updated_at, p1_name, p1_slug, ...).
type Source struct {
	Type   string
	From   string
	Joins  []string
	Select string
	Match  []string

	link func(r Row) string
	meta func(r Row) map[string]string
}

func path(parts ...string) string {
	return "/dashboard/" + strings.Join(parts, "/")
}

func nonEmpty(kv ...string) map[string]string {
	m := make(map[string]string, len(kv)/2)
	for i := 0; i+1 < len(kv); i += 2 {
		if kv[i+1] != "" {
			m[kv[i]] = kv[i+1]
		}
	}
	return m
}

func noMeta(Row) map[string]string { return map[string]string{} }

func catalogMeta(r Row) map[string]string {
	return nonEmpty("brand", r.P1Name, "category", r.P2Name, "subcategory", r.P3Name)
}

func sopMeta(r Row) map[string]string {
	return nonEmpty("kategoriSOP", r.P1Name, "sop", r.P2Name, "sopVariant", r.P3Name)
}

func knowledgeMeta(r Row) map[string]string {
	return nonEmpty("knowledge", r.P1Name)
}

func trainingMeta(r Row) map[string]string {
	return nonEmpty("qualityTraining", r.P1Name)
}

// productLink follows the product's actual parent: subcategory, category, or
// the brand itself when it has no category page.
func productLink(r Row) string {
	switch {
	case r.P3Slug != "":
		return path(r.P1Slug, r.P2Slug, r.P3Slug, r.Slug)
	case r.P2Slug != "":
		return path(r.P1Slug, r.P2Slug, r.Slug)
	default:
		return path(r.P1Slug) + "?produk=" + r.Slug
	}
}

// Sources returns one source per searchable type in fixed enumeration order;
// that order is the ranking tie-break after updated_at.
func Sources() []Source {
	return []Source{
		{
			Type:   TypeBrand,
			From:   "brands b",
			Select: cols("b", "name", "description") + ", b.slug AS slug",
			Match:  []string{"b.name", "b.description"},
			link:   func(r Row) string { return path(r.Slug) },
			meta:   noMeta,
		},
		{
			Type:   TypeCategory,
			From:   "categories c",
			Joins:  []string{"JOIN brands b ON b.id = c.brand_id"},
			Select: cols("c", "name", "description") + ", c.slug AS slug, b.name AS p1_name, b.slug AS p1_slug",
			Match:  []string{"c.name", "c.description"},
			link:   func(r Row) string { return path(r.P1Slug, r.Slug) },
			meta:   catalogMeta,
		},
		{
			Type: TypeSubcategory,
			From: "subcategories s",
			Joins: []string{
				"JOIN categories c ON c.id = s.category_id",
				"JOIN brands b ON b.id = c.brand_id",
			},
			Select: cols("s", "name", "description") + ", s.slug AS slug, b.name AS p1_name, b.slug AS p1_slug, c.name AS p2_name, c.slug AS p2_slug",
			Match:  []string{"s.name", "s.description"},
			link:   func(r Row) string { return path(r.P1Slug, r.P2Slug, r.Slug) },
			meta:   catalogMeta,
		},
		{
			Type: TypeProduct,
			From: "products p",
			Joins: []string{
				"LEFT JOIN subcategories s ON s.id = p.subcategory_id",
				"LEFT JOIN categories c ON c.id = COALESCE(p.category_id, s.category_id)",
				"LEFT JOIN brands b ON b.id = COALESCE(p.brand_id, c.brand_id)",
			},
			Select: cols("p", "name", "description") + `, p.slug AS slug,
				COALESCE(b.name, '') AS p1_name, COALESCE(b.slug, '') AS p1_slug,
				COALESCE(c.name, '') AS p2_name, COALESCE(c.slug, '') AS p2_slug,
				COALESCE(s.name, '') AS p3_name, COALESCE(s.slug, '') AS p3_slug`,
			Match: []string{"p.name", "p.description"},
			link:  productLink,
			meta:  catalogMeta,
		},
		{
			Type:   TypeSOPCategory,
			From:   "sop_categories k",
			Select: cols("k", "name", "description") + ", k.slug AS slug",
			Match:  []string{"k.name", "k.description"},
			link:   func(r Row) string { return path("sop", r.Slug) },
			meta:   noMeta,
		},
		{
			Type:   TypeSOP,
			From:   "sops s",
			Joins:  []string{"JOIN sop_categories k ON k.id = s.sop_category_id"},
			Select: cols("s", "name", "description") + ", s.slug AS slug, k.name AS p1_name, k.slug AS p1_slug",
			Match:  []string{"s.name", "s.description"},
			link:   func(r Row) string { return path("sop", r.P1Slug, r.Slug) },
			meta:   sopMeta,
		},
		{
			Type: TypeSOPVariant,
			From: "sop_variants v",
			Joins: []string{
				"JOIN sops s ON s.id = v.sop_id",
				"JOIN sop_categories k ON k.id = s.sop_category_id",
			},
			Select: cols("v", "name", "content") + ", v.slug AS slug, k.name AS p1_name, k.slug AS p1_slug, s.name AS p2_name, s.slug AS p2_slug",
			Match:  []string{"v.name", "v.content"},
			link:   func(r Row) string { return path("sop", r.P1Slug, r.P2Slug, r.Slug) },
			meta:   sopMeta,
		},
		{
			Type: TypeSOPStep,
			From: "sop_steps st",
			Joins: []string{
				"JOIN sop_variants v ON v.id = st.sop_variant_id",
				"JOIN sops s ON s.id = v.sop_id",
				"JOIN sop_categories k ON k.id = s.sop_category_id",
			},
			Select: cols("st", "name", "value") + `, k.name AS p1_name, k.slug AS p1_slug,
				s.name AS p2_name, s.slug AS p2_slug, v.name AS p3_name, v.slug AS p3_slug`,
			Match: []string{"st.name", "st.value"},
			link:  func(r Row) string { return path("sop", r.P1Slug, r.P2Slug, r.P3Slug) },
			meta:  sopMeta,
		},
		{
			Type:   TypeKnowledge,
			From:   "knowledges k",
			Select: cols("k", "title", "description") + ", k.slug AS slug",
			Match:  []string{"k.title", "k.description"},
			link:   func(r Row) string { return path("knowledge", r.Slug) },
			meta:   noMeta,
		},
		{
			Type:   TypeKnowledgeDetail,
			From:   "knowledge_details d",
			Joins:  []string{"JOIN knowledges k ON k.id = d.knowledge_id"},
			Select: cols("d", "name", "description") + ", k.title AS p1_name, k.slug AS p1_slug",
			Match:  []string{"d.name", "d.description"},
			link:   func(r Row) string { return path("knowledge", r.P1Slug) },
			meta:   knowledgeMeta,
		},
		{
			Type: TypeKnowledgeDetailVariant,
			From: "knowledge_detail_variants v",
			Joins: []string{
				"JOIN knowledge_details d ON d.id = v.knowledge_detail_id",
				"JOIN knowledges k ON k.id = d.knowledge_id",
			},
			Select: cols("v", "name", "description") + ", k.title AS p1_name, k.slug AS p1_slug",
			Match:  []string{"v.name", "v.description"},
			link:   func(r Row) string { return path("knowledge", r.P1Slug) },
			meta:   knowledgeMeta,
		},
		{
			Type: TypeKnowledgeDetailVariantItem,
			From: "knowledge_detail_variant_items i",
			Joins: []string{
				"JOIN knowledge_detail_variants v ON v.id = i.knowledge_detail_variant_id",
				"JOIN knowledge_details d ON d.id = v.knowledge_detail_id",
				"JOIN knowledges k ON k.id = d.knowledge_id",
			},
			Select: cols("i", "name", "description") + ", k.title AS p1_name, k.slug AS p1_slug",
			Match:  []string{"i.name", "i.description"},
			link:   func(r Row) string { return path("knowledge", r.P1Slug) },
			meta:   knowledgeMeta,
		},
		{
			Type:   TypeQualityTraining,
			From:   "quality_trainings t",
			Select: cols("t", "title", "description") + ", t.slug AS slug",
			Match:  []string{"t.title", "t.description"},
			link:   func(r Row) string { return path("quality-training", r.Slug) },
			meta:   noMeta,
		},
		{
			Type:   TypeQualityTrainingVariant,
			From:   "quality_training_variants v",
			Joins:  []string{"JOIN quality_trainings t ON t.id = v.quality_training_id"},
			Select: cols("v", "name", "description") + ", t.title AS p1_name, t.slug AS p1_slug",
			Match:  []string{"v.name", "v.description"},
			link:   func(r Row) string { return path("quality-training", r.P1Slug) },
			meta:   trainingMeta,
		},
		{
			Type: TypeQualityTrainingDetail,
			From: "quality_training_details d",
			Joins: []string{
				"JOIN quality_training_variants v ON v.id = d.quality_training_variant_id",
				"JOIN quality_trainings t ON t.id = v.quality_training_id",
			},
			Select: cols("d", "name", "description") + ", t.title AS p1_name, t.slug AS p1_slug",
			Match:  []string{"d.name", "d.description"},
			link:   func(r Row) string { return path("quality-training", r.P1Slug) },
			meta:   trainingMeta,
		},
		{
			Type: TypeQualityTrainingSubdetail,
			From: "quality_training_subdetails sd",
			Joins: []string{
				"JOIN quality_training_details d ON d.id = sd.quality_training_detail_id",
				"JOIN quality_training_variants v ON v.id = d.quality_training_variant_id",
				"JOIN quality_trainings t ON t.id = v.quality_training_id",
			},
			Select: cols("sd", "name", "description") + ", t.title AS p1_name, t.slug AS p1_slug",
			Match:  []string{"sd.name", "sd.description"},
			link:   func(r Row) string { return path("quality-training", r.P1Slug) },
			meta:   trainingMeta,
		},
		{
			Type:   TypeAgent,
			From:   "agents a",
			Select: cols("a", "name", "email"),
			Match:  []string{"a.name", "a.email"},
			link:   func(r Row) string { return path("agents", r.ID) },
			meta:   noMeta,
		},
	}
}

func cols(alias, title, description string) string {
	return fmt.Sprintf("%[1]s.id AS id, %[1]s.%[2]s AS title, COALESCE(%[1]s.%[3]s, '') AS description, %[1]s.updated_at AS updated_at",
		alias, title, description)
}

func (s Source) toHit(r Row) Hit {
	return Hit{
		Type:        s.Type,
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description,
		Link:        s.link(r),
		Metadata:    s.meta(r),
		updatedAt:   r.UpdatedAt,
	}
}
