package database

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/lib/pq"
	"textile-tryon-backend/internal/models"
)

func (c *Client) CreateGarment(g *models.Garment) (*models.Garment, error) {
	var created models.Garment
	err := c.db.QueryRow(`
		INSERT INTO garments (name_id, garment_name, category, subcategory, garment_type, color, pattern_style, price, stock_quantity)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, name_id, garment_name, category, subcategory, garment_type, color, pattern_style, price, stock_quantity, created_at, updated_at
	`, g.NameID, g.GarmentName, g.Category, g.Subcategory, g.GarmentType, g.Color, g.PatternStyle, g.Price, g.StockQuantity).Scan(
		&created.ID, &created.NameID, &created.GarmentName, &created.Category, &created.Subcategory,
		&created.GarmentType, &created.Color, &created.PatternStyle, &created.Price, &created.StockQuantity,
		&created.CreatedAt, &created.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create garment: %w", err)
	}

	return &created, nil
}

func (c *Client) UpdateGarment(id int64, g *models.Garment) (*models.Garment, error) {
	var updated models.Garment
	err := c.db.QueryRow(`
		UPDATE garments
		SET name_id = $1, garment_name = $2, category = $3, subcategory = $4, garment_type = $5,
		    color = $6, pattern_style = $7, price = $8, stock_quantity = $9, updated_at = NOW()
		WHERE id = $10
		RETURNING id, name_id, garment_name, category, subcategory, garment_type, color, pattern_style, price, stock_quantity, created_at, updated_at
	`, g.NameID, g.GarmentName, g.Category, g.Subcategory, g.GarmentType, g.Color, g.PatternStyle, g.Price, g.StockQuantity, id).Scan(
		&updated.ID, &updated.NameID, &updated.GarmentName, &updated.Category, &updated.Subcategory,
		&updated.GarmentType, &updated.Color, &updated.PatternStyle, &updated.Price, &updated.StockQuantity,
		&updated.CreatedAt, &updated.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("garment %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update garment: %w", err)
	}

	return &updated, nil
}

func (c *Client) GetGarment(id int64) (*models.Garment, error) {
	return c.getGarmentWhere("id = $1", id)
}

func (c *Client) GetGarmentByNameID(nameID string) (*models.Garment, error) {
	return c.getGarmentWhere("name_id = $1", nameID)
}

func (c *Client) getGarmentWhere(where string, arg interface{}) (*models.Garment, error) {
	var g models.Garment
	err := c.db.QueryRow(`
		SELECT id, name_id, garment_name, category, subcategory, garment_type, color, pattern_style, price, stock_quantity, created_at, updated_at
		FROM garments
		WHERE `+where, arg).Scan(
		&g.ID, &g.NameID, &g.GarmentName, &g.Category, &g.Subcategory,
		&g.GarmentType, &g.Color, &g.PatternStyle, &g.Price, &g.StockQuantity,
		&g.CreatedAt, &g.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("garment %v: %w", arg, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get garment: %w", err)
	}

	return &g, nil
}

func (c *Client) GarmentNameIDExists(nameID string) (bool, error) {
	var count int
	err := c.db.QueryRow(`SELECT COUNT(*) FROM garments WHERE name_id = $1`, nameID).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("failed to check garment name id: %w", err)
	}
	return count > 0, nil
}

func (c *Client) DeleteGarment(id int64) error {
	result, err := c.db.Exec(`DELETE FROM garments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete garment: %w", err)
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return fmt.Errorf("garment %d: %w", id, ErrNotFound)
	}
	return nil
}

// SearchGarments applies the filter and returns a page of garments plus the
// total number of matches.
func (c *Client) SearchGarments(filter models.GarmentFilter) ([]models.Garment, int, error) {
	var clauses []string
	var args []interface{}

	next := func(arg interface{}) string {
		args = append(args, arg)
		return fmt.Sprintf("$%d", len(args))
	}

	if term := strings.TrimSpace(filter.SearchTerm); term != "" {
		p := next("%" + term + "%")
		clauses = append(clauses, fmt.Sprintf(
			"(garment_name ILIKE %s OR category ILIKE %s OR garment_type ILIKE %s OR color ILIKE %s)", p, p, p, p))
	} else {
		if len(filter.Categories) > 0 {
			clauses = append(clauses, fmt.Sprintf("category = ANY(%s)", next(pq.Array(filter.Categories))))
		}
		if len(filter.Colors) > 0 {
			clauses = append(clauses, fmt.Sprintf("color = ANY(%s)", next(pq.Array(filter.Colors))))
		}
		if filter.HasMinPrice {
			clauses = append(clauses, fmt.Sprintf("price >= %s", next(filter.MinPrice)))
		}
		if filter.HasMaxPrice {
			clauses = append(clauses, fmt.Sprintf("price <= %s", next(filter.MaxPrice)))
		}
		if filter.InStockOnly {
			clauses = append(clauses, "stock_quantity > 0")
		}
	}

	where := ""
	if len(clauses) > 0 {
		where = " WHERE " + strings.Join(clauses, " AND ")
	}

	var total int
	if err := c.db.QueryRow(`SELECT COUNT(*) FROM garments`+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count garments: %w", err)
	}

	size := filter.Size
	if size <= 0 {
		size = 20
	}

	query := `
		SELECT id, name_id, garment_name, category, subcategory, garment_type, color, pattern_style, price, stock_quantity, created_at, updated_at
		FROM garments` + where + ` ORDER BY ` + sortClause(filter.SortBy) +
		fmt.Sprintf(" LIMIT %s OFFSET %s", next(size), next(PageOffset(filter.Page, size)))

	rows, err := c.db.Query(query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to search garments: %w", err)
	}
	defer rows.Close()

	var garments []models.Garment
	for rows.Next() {
		var g models.Garment
		err := rows.Scan(
			&g.ID, &g.NameID, &g.GarmentName, &g.Category, &g.Subcategory,
			&g.GarmentType, &g.Color, &g.PatternStyle, &g.Price, &g.StockQuantity,
			&g.CreatedAt, &g.UpdatedAt,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan garment: %w", err)
		}
		garments = append(garments, g)
	}

	return garments, total, rows.Err()
}

func sortClause(sortBy string) string {
	switch sortBy {
	case "price_asc":
		return "price ASC"
	case "price_desc":
		return "price DESC"
	case "name_asc":
		return "garment_name ASC"
	case "name_desc":
		return "garment_name DESC"
	case "oldest":
		return "created_at ASC"
	default: // newest
		return "created_at DESC"
	}
}

func (c *Client) ListCategories() ([]string, error) {
	return c.listDistinct(`SELECT DISTINCT category FROM garments ORDER BY category`)
}

func (c *Client) ListSubcategories(category string) ([]string, error) {
	return c.listDistinct(`
		SELECT DISTINCT subcategory FROM garments
		WHERE category = $1 AND subcategory IS NOT NULL
		ORDER BY subcategory
	`, category)
}

func (c *Client) ListColors() ([]string, error) {
	return c.listDistinct(`SELECT DISTINCT color FROM garments ORDER BY color`)
}

func (c *Client) ListGarmentTypes() ([]string, error) {
	return c.listDistinct(`SELECT DISTINCT garment_type FROM garments ORDER BY garment_type`)
}

func (c *Client) listDistinct(query string, args ...interface{}) ([]string, error) {
	rows, err := c.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list values: %w", err)
	}
	defer rows.Close()

	var values []string
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, fmt.Errorf("failed to scan value: %w", err)
		}
		values = append(values, v)
	}

	return values, rows.Err()
}

func (c *Client) PriceRange() (min, max float64, err error) {
	err = c.db.QueryRow(`SELECT COALESCE(MIN(price), 0), COALESCE(MAX(price), 0) FROM garments`).Scan(&min, &max)
	if err != nil {
		err = fmt.Errorf("failed to get price range: %w", err)
	}
	return min, max, err
}

func (c *Client) CountGarments() (int, error) {
	var count int
	if err := c.db.QueryRow(`SELECT COUNT(*) FROM garments`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count garments: %w", err)
	}
	return count, nil
}
