package persistence

import (
	"context"
	"database/sql"

	"github.com/nandinigupta-product/bmf-widget-demo/model"
	"github.com/nandinigupta-product/bmf-widget-demo/storage"
)

type Persistence struct {
	dbConn *sql.DB
}

func New(dbConn *sql.DB) storage.CatalogStore {
	return &Persistence{
		dbConn: dbConn,
	}
}

// Load implements storage.CatalogStore.
func (p *Persistence) Load(ctx context.Context) (model.Catalog, error) {
	catalog := model.Catalog{}

	productQuery := `SELECT value, label
				 FROM product
				 WHERE is_available=true
				 ORDER BY sort_order`

	rows, err := p.dbConn.QueryContext(ctx, productQuery)
	if err != nil {
		return catalog, err
	}
	defer rows.Close()

	for rows.Next() {
		pr := model.Product{}
		if err := rows.Scan(&pr.Value, &pr.Label); err != nil {
			return catalog, err
		}

		catalog.Products = append(catalog.Products, pr)
	}
	if err := rows.Err(); err != nil {
		return catalog, err
	}

	cityQuery := `SELECT code, label
				 FROM city
				 WHERE is_serviceable=true
				 ORDER BY sort_order`

	cityRows, err := p.dbConn.QueryContext(ctx, cityQuery)
	if err != nil {
		return catalog, err
	}
	defer cityRows.Close()

	for cityRows.Next() {
		c := model.City{}
		if err := cityRows.Scan(&c.Code, &c.Label); err != nil {
			return catalog, err
		}

		catalog.Cities = append(catalog.Cities, c)
	}
	if err := cityRows.Err(); err != nil {
		return catalog, err
	}

	currencyQuery := `SELECT code
				 FROM currency
				 WHERE is_available=true
				 ORDER BY sort_order`

	ccyRows, err := p.dbConn.QueryContext(ctx, currencyQuery)
	if err != nil {
		return catalog, err
	}
	defer ccyRows.Close()

	for ccyRows.Next() {
		var code string
		if err := ccyRows.Scan(&code); err != nil {
			return catalog, err
		}

		catalog.Currencies = append(catalog.Currencies, code)
	}
	if err := ccyRows.Err(); err != nil {
		return catalog, err
	}

	return catalog, nil
}
