package catalog

import (
	"context"
	"strings"
	"time"

	catalogerrors "github.com/ccparagoncorp/customercare-web-sub001/internal/catalog/errors"
	"github.com/ccparagoncorp/customercare-web-sub001/internal/shared/apperror"
	"github.com/ccparagoncorp/customercare-web-sub001/internal/shared/cache"
	"github.com/ccparagoncorp/customercare-web-sub001/internal/shared/contextutil"
	"github.com/ccparagoncorp/customercare-web-sub001/internal/shared/slug"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/datatypes"
)

const (
	cacheBrandList      = "brand-list"
	cacheBrandBySlug    = "brand-by-slug"
	cacheCategoryBySlug = "category-by-slug"
)

//go:generate mockgen -source=catalog_service.go -destination=mock/catalog_service_mock.go -package=mock
type Service interface {
	ListBrands(ctx context.Context) ([]Brand, error)
	GetBrand(ctx context.Context, brandSlug string) (*Brand, error)
	GetCategory(ctx context.Context, brandSlug, categorySlug string) (*Category, error)
	GetSubcategory(ctx context.Context, brandSlug, categorySlug, subcategorySlug string) (*Subcategory, error)
	ResolveProduct(ctx context.Context, brandSlug, categorySlug string, tail []string) (*Product, error)

	CreateBrand(ctx context.Context, req BrandRequest) (*Brand, error)
	UpdateBrand(ctx context.Context, id string, req BrandRequest) (*Brand, error)
	DeleteBrand(ctx context.Context, id string) error
	CreateCategory(ctx context.Context, req CategoryRequest) (*Category, error)
	UpdateCategory(ctx context.Context, id string, req CategoryRequest) (*Category, error)
	DeleteCategory(ctx context.Context, id string) error
	CreateSubcategory(ctx context.Context, req SubcategoryRequest) (*Subcategory, error)
	UpdateSubcategory(ctx context.Context, id string, req SubcategoryRequest) (*Subcategory, error)
	DeleteSubcategory(ctx context.Context, id string) error
	CreateProduct(ctx context.Context, req ProductRequest) (*Product, error)
	UpdateProduct(ctx context.Context, id string, req ProductRequest) (*Product, error)
	DeleteProduct(ctx context.Context, id string) error
}

type Options struct {
	CacheTTL    time.Duration
	ReadTimeout time.Duration
}

type service struct {
	repo   Repository
	cache  *cache.Cache
	opts   Options
	logger *zap.Logger
}

func NewService(repo Repository, c *cache.Cache, opts Options, logger ...*zap.Logger) Service {
	l := zap.L().Named("catalog.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("catalog.service")
	}
	if opts.CacheTTL <= 0 {
		opts.CacheTTL = cache.DefaultTTL
	}
	return &service{repo: repo, cache: c, opts: opts, logger: l}
}

func (s *service) readCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.opts.ReadTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.opts.ReadTimeout)
}

func (s *service) ListBrands(ctx context.Context) ([]Brand, error) {
	ctx, cancel := s.readCtx(ctx)
	defer cancel()

	brands, err := cache.Remember(ctx, s.cache, cacheBrandList, nil, s.opts.CacheTTL,
		[]string{cache.TagBrands},
		func(ctx context.Context) ([]Brand, error) {
			return s.repo.ListBrands(ctx)
		})
	if err != nil {
		s.logger.Error("list brands failed", zap.Error(err))
		return nil, mapRepositoryError(err, catalogerrors.ErrBrandNotFound)
	}
	return brands, nil
}

func (s *service) GetBrand(ctx context.Context, brandSlug string) (*Brand, error) {
	ctx, cancel := s.readCtx(ctx)
	defer cancel()

	key := slug.Normalize(brandSlug)
	brand, err := cache.Remember(ctx, s.cache, cacheBrandBySlug, map[string]string{"brand": key}, s.opts.CacheTTL,
		[]string{cache.TagBrands},
		func(ctx context.Context) (*Brand, error) {
			return s.repo.FindBrandBySlug(ctx, key)
		})
	if err != nil {
		s.logger.Debug("get brand failed", zap.String("brand", key), zap.Error(err))
		return nil, mapRepositoryError(err, catalogerrors.ErrBrandNotFound)
	}
	return brand, nil
}

func (s *service) GetCategory(ctx context.Context, brandSlug, categorySlug string) (*Category, error) {
	ctx, cancel := s.readCtx(ctx)
	defer cancel()

	args := map[string]string{"brand": slug.Normalize(brandSlug), "category": slug.Normalize(categorySlug)}
	category, err := cache.Remember(ctx, s.cache, cacheCategoryBySlug, args, s.opts.CacheTTL,
		[]string{cache.TagCategories},
		func(ctx context.Context) (*Category, error) {
			return s.repo.FindCategoryBySlug(ctx, args["brand"], args["category"])
		})
	if err != nil {
		s.logger.Debug("get category failed", zap.Any("path", args), zap.Error(err))
		return nil, mapRepositoryError(err, catalogerrors.ErrCategoryNotFound)
	}
	return category, nil
}

func (s *service) GetSubcategory(ctx context.Context, brandSlug, categorySlug, subcategorySlug string) (*Subcategory, error) {
	ctx, cancel := s.readCtx(ctx)
	defer cancel()

	sub, err := s.repo.FindSubcategoryBySlug(ctx, brandSlug, categorySlug, subcategorySlug)
	if err != nil {
		return nil, mapRepositoryError(err, catalogerrors.ErrSubcategoryNotFound)
	}
	return sub, nil
}

// ResolveProduct accepts [product] for a product hanging directly off the
// category, or [subcategory, product]. Any other shape is a bad request.
func (s *service) ResolveProduct(ctx context.Context, brandSlug, categorySlug string, tail []string) (*Product, error) {
	var subSlug, productSlug string
	switch len(tail) {
	case 1:
		productSlug = tail[0]
	case 2:
		subSlug, productSlug = tail[0], tail[1]
	default:
		return nil, catalogerrors.ErrInvalidProductPath
	}
	if strings.TrimSpace(productSlug) == "" || (len(tail) == 2 && strings.TrimSpace(subSlug) == "") {
		return nil, catalogerrors.ErrInvalidProductPath
	}

	ctx, cancel := s.readCtx(ctx)
	defer cancel()

	product, err := s.repo.FindProductByPath(ctx, brandSlug, categorySlug, subSlug, productSlug)
	if err != nil {
		return nil, mapRepositoryError(err, catalogerrors.ErrProductNotFound)
	}
	return product, nil
}

func parseID(id string) (uuid.UUID, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return uuid.Nil, catalogerrors.ErrInvalidID
	}
	return parsed, nil
}

func requireName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", apperror.FieldErrors{"name": {"Name is required"}}.Err()
	}
	return name, nil
}

func (s *service) CreateBrand(ctx context.Context, req BrandRequest) (*Brand, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create brand requested", zap.String("request_id", rid), zap.String("name", req.Name))

	name, err := requireName(req.Name)
	if err != nil {
		return nil, err
	}

	var brand Brand
	err = s.repo.WithTx(ctx, func(repo Repository) error {
		sl, err := repo.UniqueSlug(ctx, "brands", slug.Slugify(name), nil, nil)
		if err != nil {
			return err
		}
		brand = Brand{
			Name:        name,
			Slug:        sl,
			Description: req.Description,
			Images:      datatypes.JSONSlice[string](req.Images),
			VideoURL:    req.VideoURL,
			Color:       req.Color,
		}
		return repo.Create(ctx, &brand)
	})
	if err != nil {
		s.logger.Error("create brand failed", zap.String("request_id", rid), zap.Error(err))
		return nil, mapRepositoryError(err, catalogerrors.ErrBrandNotFound)
	}

	s.logger.Info("create brand success", zap.String("request_id", rid), zap.String("brand_id", brand.ID.String()))
	return &brand, nil
}

func (s *service) UpdateBrand(ctx context.Context, id string, req BrandRequest) (*Brand, error) {
	brandID, err := parseID(id)
	if err != nil {
		return nil, err
	}
	name, err := requireName(req.Name)
	if err != nil {
		return nil, err
	}

	var brand *Brand
	err = s.repo.WithTx(ctx, func(repo Repository) error {
		brand, err = repo.FindBrandByID(ctx, brandID)
		if err != nil {
			return err
		}
		if name != brand.Name {
			sl, err := repo.UniqueSlug(ctx, "brands", slug.Slugify(name), nil, &brandID)
			if err != nil {
				return err
			}
			brand.Slug = sl
		}
		brand.Name = name
		brand.Description = req.Description
		brand.Images = datatypes.JSONSlice[string](req.Images)
		brand.VideoURL = req.VideoURL
		brand.Color = req.Color
		return repo.Save(ctx, brand)
	})
	if err != nil {
		s.logger.Error("update brand failed", zap.String("brand_id", id), zap.Error(err))
		return nil, mapRepositoryError(err, catalogerrors.ErrBrandNotFound)
	}

	s.logger.Info("update brand success", zap.String("brand_id", id))
	return brand, nil
}

func (s *service) DeleteBrand(ctx context.Context, id string) error {
	brandID, err := parseID(id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, &Brand{}, brandID); err != nil {
		s.logger.Error("delete brand failed", zap.String("brand_id", id), zap.Error(err))
		return mapRepositoryError(err, catalogerrors.ErrBrandNotFound)
	}
	s.logger.Info("delete brand success", zap.String("brand_id", id))
	return nil
}

func (s *service) CreateCategory(ctx context.Context, req CategoryRequest) (*Category, error) {
	brandID, err := parseID(req.BrandID)
	if err != nil {
		return nil, err
	}
	name, err := requireName(req.Name)
	if err != nil {
		return nil, err
	}

	var category Category
	err = s.repo.WithTx(ctx, func(repo Repository) error {
		ok, err := repo.Exists(ctx, "brands", brandID)
		if err != nil {
			return err
		}
		if !ok {
			return catalogerrors.ErrBrandNotFound
		}
		sl, err := repo.UniqueSlug(ctx, "categories", slug.Slugify(name), slug.ByColumn("brand_id", brandID), nil)
		if err != nil {
			return err
		}
		category = Category{
			BrandID:     brandID,
			Name:        name,
			Slug:        sl,
			Description: req.Description,
			Images:      datatypes.JSONSlice[string](req.Images),
		}
		return repo.Create(ctx, &category)
	})
	if err != nil {
		s.logger.Error("create category failed", zap.String("brand_id", req.BrandID), zap.Error(err))
		return nil, mapRepositoryError(err, catalogerrors.ErrCategoryNotFound)
	}

	s.logger.Info("create category success", zap.String("category_id", category.ID.String()))
	return &category, nil
}

func (s *service) UpdateCategory(ctx context.Context, id string, req CategoryRequest) (*Category, error) {
	categoryID, err := parseID(id)
	if err != nil {
		return nil, err
	}
	brandID, err := parseID(req.BrandID)
	if err != nil {
		return nil, err
	}
	name, err := requireName(req.Name)
	if err != nil {
		return nil, err
	}

	var category *Category
	err = s.repo.WithTx(ctx, func(repo Repository) error {
		category, err = repo.FindCategoryByID(ctx, categoryID)
		if err != nil {
			return err
		}
		if brandID != category.BrandID {
			ok, err := repo.Exists(ctx, "brands", brandID)
			if err != nil {
				return err
			}
			if !ok {
				return catalogerrors.ErrBrandNotFound
			}
		}
		if name != category.Name || brandID != category.BrandID {
			sl, err := repo.UniqueSlug(ctx, "categories", slug.Slugify(name), slug.ByColumn("brand_id", brandID), &categoryID)
			if err != nil {
				return err
			}
			category.Slug = sl
		}
		category.BrandID = brandID
		category.Name = name
		category.Description = req.Description
		category.Images = datatypes.JSONSlice[string](req.Images)
		return repo.Save(ctx, category)
	})
	if err != nil {
		s.logger.Error("update category failed", zap.String("category_id", id), zap.Error(err))
		return nil, mapRepositoryError(err, catalogerrors.ErrCategoryNotFound)
	}
	return category, nil
}

func (s *service) DeleteCategory(ctx context.Context, id string) error {
	categoryID, err := parseID(id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, &Category{}, categoryID); err != nil {
		s.logger.Error("delete category failed", zap.String("category_id", id), zap.Error(err))
		return mapRepositoryError(err, catalogerrors.ErrCategoryNotFound)
	}
	return nil
}

func (s *service) CreateSubcategory(ctx context.Context, req SubcategoryRequest) (*Subcategory, error) {
	categoryID, err := parseID(req.CategoryID)
	if err != nil {
		return nil, err
	}
	name, err := requireName(req.Name)
	if err != nil {
		return nil, err
	}

	var sub Subcategory
	err = s.repo.WithTx(ctx, func(repo Repository) error {
		ok, err := repo.Exists(ctx, "categories", categoryID)
		if err != nil {
			return err
		}
		if !ok {
			return catalogerrors.ErrCategoryNotFound
		}
		sl, err := repo.UniqueSlug(ctx, "subcategories", slug.Slugify(name), slug.ByColumn("category_id", categoryID), nil)
		if err != nil {
			return err
		}
		sub = Subcategory{
			CategoryID:  categoryID,
			Name:        name,
			Slug:        sl,
			Description: req.Description,
			Images:      datatypes.JSONSlice[string](req.Images),
		}
		return repo.Create(ctx, &sub)
	})
	if err != nil {
		s.logger.Error("create subcategory failed", zap.String("category_id", req.CategoryID), zap.Error(err))
		return nil, mapRepositoryError(err, catalogerrors.ErrSubcategoryNotFound)
	}
	return &sub, nil
}

func (s *service) UpdateSubcategory(ctx context.Context, id string, req SubcategoryRequest) (*Subcategory, error) {
	subID, err := parseID(id)
	if err != nil {
		return nil, err
	}
	categoryID, err := parseID(req.CategoryID)
	if err != nil {
		return nil, err
	}
	name, err := requireName(req.Name)
	if err != nil {
		return nil, err
	}

	var sub *Subcategory
	err = s.repo.WithTx(ctx, func(repo Repository) error {
		sub, err = repo.FindSubcategoryByID(ctx, subID)
		if err != nil {
			return err
		}
		if categoryID != sub.CategoryID {
			ok, err := repo.Exists(ctx, "categories", categoryID)
			if err != nil {
				return err
			}
			if !ok {
				return catalogerrors.ErrCategoryNotFound
			}
		}
		if name != sub.Name || categoryID != sub.CategoryID {
			sl, err := repo.UniqueSlug(ctx, "subcategories", slug.Slugify(name), slug.ByColumn("category_id", categoryID), &subID)
			if err != nil {
				return err
			}
			sub.Slug = sl
		}
		sub.CategoryID = categoryID
		sub.Name = name
		sub.Description = req.Description
		sub.Images = datatypes.JSONSlice[string](req.Images)
		return repo.Save(ctx, sub)
	})
	if err != nil {
		s.logger.Error("update subcategory failed", zap.String("subcategory_id", id), zap.Error(err))
		return nil, mapRepositoryError(err, catalogerrors.ErrSubcategoryNotFound)
	}
	return sub, nil
}

func (s *service) DeleteSubcategory(ctx context.Context, id string) error {
	subID, err := parseID(id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, &Subcategory{}, subID); err != nil {
		s.logger.Error("delete subcategory failed", zap.String("subcategory_id", id), zap.Error(err))
		return mapRepositoryError(err, catalogerrors.ErrSubcategoryNotFound)
	}
	return nil
}

func toDetails(reqs []ProductDetailRequest) []ProductDetail {
	details := make([]ProductDetail, 0, len(reqs))
	for _, d := range reqs {
		details = append(details, ProductDetail{
			Name:   strings.TrimSpace(d.Name),
			Detail: d.Detail,
			Images: datatypes.JSONSlice[string](d.Images),
		})
	}
	return details
}

// checkParent makes sure the referenced owner row exists.
func checkParent(ctx context.Context, repo Repository, parent ProductParent) error {
	ok, err := repo.Exists(ctx, parent.table(), parent.ID)
	if err != nil {
		return err
	}
	if !ok {
		return catalogerrors.ErrParentNotFound
	}
	return nil
}

func productSlugScope(parent ProductParent) slug.Scope {
	return slug.ByColumn(parent.column(), parent.ID)
}

func (s *service) CreateProduct(ctx context.Context, req ProductRequest) (*Product, error) {
	rid := contextutil.GetRequestID(ctx)
	name, err := requireName(req.Name)
	if err != nil {
		return nil, err
	}
	parent, err := ParentFromIDs(req.BrandID, req.CategoryID, req.SubcategoryID)
	if err != nil {
		return nil, err
	}
	status := req.Status
	if status == "" {
		status = StatusActive
	}

	s.logger.Debug("create product requested",
		zap.String("request_id", rid),
		zap.String("parent_kind", string(parent.Kind)),
		zap.String("parent_id", parent.ID.String()),
	)

	var product Product
	err = s.repo.WithTx(ctx, func(repo Repository) error {
		if err := checkParent(ctx, repo, parent); err != nil {
			return err
		}
		sl, err := repo.UniqueSlug(ctx, "products", slug.Slugify(name), productSlugScope(parent), nil)
		if err != nil {
			return err
		}
		product = Product{
			Name:        name,
			Slug:        sl,
			Description: req.Description,
			Status:      status,
			Images:      datatypes.JSONSlice[string](req.Images),
			Price:       req.Price,
			Capacity:    req.Capacity,
		}
		parent.Apply(&product)
		if err := repo.Create(ctx, &product); err != nil {
			return err
		}
		details := toDetails(req.Details)
		if len(details) == 0 {
			return nil
		}
		if err := repo.ReplaceProductDetails(ctx, product.ID, details); err != nil {
			return err
		}
		product.Details = details
		return nil
	})
	if err != nil {
		s.logger.Error("create product failed", zap.String("request_id", rid), zap.Error(err))
		return nil, mapRepositoryError(err, catalogerrors.ErrProductNotFound)
	}

	s.logger.Info("create product success", zap.String("request_id", rid), zap.String("product_id", product.ID.String()))
	return &product, nil
}

func (s *service) UpdateProduct(ctx context.Context, id string, req ProductRequest) (*Product, error) {
	productID, err := parseID(id)
	if err != nil {
		return nil, err
	}
	name, err := requireName(req.Name)
	if err != nil {
		return nil, err
	}
	parent, err := ParentFromIDs(req.BrandID, req.CategoryID, req.SubcategoryID)
	if err != nil {
		return nil, err
	}

	var product *Product
	err = s.repo.WithTx(ctx, func(repo Repository) error {
		product, err = repo.FindProductByID(ctx, productID)
		if err != nil {
			return err
		}
		current, _ := ParentOf(*product)
		if current != parent {
			if err := checkParent(ctx, repo, parent); err != nil {
				return err
			}
		}
		if name != product.Name || current != parent {
			sl, err := repo.UniqueSlug(ctx, "products", slug.Slugify(name), productSlugScope(parent), &productID)
			if err != nil {
				return err
			}
			product.Slug = sl
		}

		product.Name = name
		product.Description = req.Description
		if req.Status != "" {
			product.Status = req.Status
		}
		product.Images = datatypes.JSONSlice[string](req.Images)
		product.Price = req.Price
		product.Capacity = req.Capacity
		parent.Apply(product)

		if err := repo.Save(ctx, product); err != nil {
			return err
		}
		details := toDetails(req.Details)
		if err := repo.ReplaceProductDetails(ctx, productID, details); err != nil {
			return err
		}
		product.Details = details
		return nil
	})
	if err != nil {
		s.logger.Error("update product failed", zap.String("product_id", id), zap.Error(err))
		return nil, mapRepositoryError(err, catalogerrors.ErrProductNotFound)
	}

	s.logger.Info("update product success", zap.String("product_id", id))
	return product, nil
}

func (s *service) DeleteProduct(ctx context.Context, id string) error {
	productID, err := parseID(id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, &Product{}, productID); err != nil {
		s.logger.Error("delete product failed", zap.String("product_id", id), zap.Error(err))
		return mapRepositoryError(err, catalogerrors.ErrProductNotFound)
	}
	return nil
}
