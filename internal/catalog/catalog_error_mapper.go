package catalog

import (
	"errors"
	"fmt"
	"strings"

	catalogerrors "github.com/ccparagoncorp/customercare-web-sub001/internal/catalog/errors"
	"github.com/ccparagoncorp/customercare-web-sub001/internal/shared/apperror"

	"github.com/jackc/pgx/v5/pgconn"
)

var errParentCount = apperror.FieldErrors{
	"parent": {"Exactly one of brandId, categoryId or subcategoryId must be set"},
}.Err()

func errInvalidParentID(kind ParentKind) error {
	field := string(kind) + "Id"
	return apperror.FieldErrors{field: {fmt.Sprintf("%s must be a valid id", field)}}.Err()
}

func mapRepositoryError(err error, notFound *apperror.AppError) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" && pgErr.ConstraintName == "uq_brand_name" {
		return catalogerrors.ErrBrandNameTaken
	}
	if strings.Contains(strings.ToLower(err.Error()), "brands.name") {
		return catalogerrors.ErrBrandNameTaken
	}

	return apperror.FromStore(err, notFound)
}
