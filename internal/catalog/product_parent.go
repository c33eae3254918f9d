package catalog

import (
	"github.com/google/uuid"
)

type ParentKind string

const (
	ParentBrand       ParentKind = "brand"
	ParentCategory    ParentKind = "category"
	ParentSubcategory ParentKind = "subcategory"
)

// ProductParent is the one owner a product hangs off. Storage keeps three
// nullable columns; this type is how the rest of the code talks about them.
type ProductParent struct {
	Kind ParentKind
	ID   uuid.UUID
}

// ParentFromIDs builds the parent from optional ids and rejects anything but
// exactly one valid id.
func ParentFromIDs(brandID, categoryID, subcategoryID *string) (ProductParent, error) {
	var (
		set    int
		parent ProductParent
	)
	for _, c := range []struct {
		kind ParentKind
		raw  *string
	}{
		{ParentBrand, brandID},
		{ParentCategory, categoryID},
		{ParentSubcategory, subcategoryID},
	} {
		if c.raw == nil || *c.raw == "" {
			continue
		}
		set++
		id, err := uuid.Parse(*c.raw)
		if err != nil {
			return ProductParent{}, errInvalidParentID(c.kind)
		}
		parent = ProductParent{Kind: c.kind, ID: id}
	}
	if set != 1 {
		return ProductParent{}, errParentCount
	}
	return parent, nil
}

// ParentOf reads the parent back from a stored product.
func ParentOf(p Product) (ProductParent, error) {
	var (
		set    int
		parent ProductParent
	)
	if p.BrandID != nil {
		set++
		parent = ProductParent{Kind: ParentBrand, ID: *p.BrandID}
	}
	if p.CategoryID != nil {
		set++
		parent = ProductParent{Kind: ParentCategory, ID: *p.CategoryID}
	}
	if p.SubcategoryID != nil {
		set++
		parent = ProductParent{Kind: ParentSubcategory, ID: *p.SubcategoryID}
	}
	if set != 1 {
		return ProductParent{}, errParentCount
	}
	return parent, nil
}

// Apply writes the parent into p, clearing the other two columns.
func (pp ProductParent) Apply(p *Product) {
	p.BrandID, p.CategoryID, p.SubcategoryID = nil, nil, nil
	id := pp.ID
	switch pp.Kind {
	case ParentBrand:
		p.BrandID = &id
	case ParentCategory:
		p.CategoryID = &id
	case ParentSubcategory:
		p.SubcategoryID = &id
	}
}

// column is the foreign key column that holds this parent.
func (pp ProductParent) column() string {
	switch pp.Kind {
	case ParentBrand:
		return "brand_id"
	case ParentCategory:
		return "category_id"
	default:
		return "subcategory_id"
	}
}

func (pp ProductParent) table() string {
	switch pp.Kind {
	case ParentBrand:
		return "brands"
	case ParentCategory:
		return "categories"
	default:
		return "subcategories"
	}
}
