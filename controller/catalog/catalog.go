package catalog

import (
	"github.com/gofiber/fiber/v2"
	"github.com/nandinigupta-product/bmf-widget-demo/model"
	"github.com/nandinigupta-product/bmf-widget-demo/storage"
	"github.com/rs/zerolog/log"
)

func New(store storage.CatalogStore) *Catalog {
	return &Catalog{store: store}
}

type Catalog struct {
	store storage.CatalogStore // may be nil when no database is configured
}

type productDTO struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

type cityDTO struct {
	Code  string `json:"code"`
	Label string `json:"label"`
}

// Response lists the selectable options of the quick-order form.
type Response struct {
	Products   []productDTO `json:"products"`
	Cities     []cityDTO    `json:"cities"`
	Currencies []string     `json:"currencies"`
}

// List godoc
//
//	@Summary		List form options
//	@Description	products, serviceable cities and currencies for the quick-order form
//	@Tags			catalog
//	@Success		200	{object}	catalog.Response
//	@Router			/api/v1/catalog [get]
func (c *Catalog) List(ctx *fiber.Ctx) error {
	cat := model.DefaultCatalog()

	if c.store != nil {
		loaded, err := c.store.Load(ctx.UserContext())
		switch {
		case err != nil:
			log.Error().Err(err).Msg("unable to load catalog, serving built-in defaults")
		case len(loaded.Cities) == 0 || len(loaded.Currencies) == 0:
			log.Debug().Msg("persisted catalog is empty, serving built-in defaults")
		default:
			cat = loaded
		}
	}

	resp := Response{Currencies: cat.Currencies}
	for _, p := range cat.Products {
		resp.Products = append(resp.Products, productDTO{Value: p.Value, Label: p.Label})
	}

	for _, city := range cat.Cities {
		resp.Cities = append(resp.Cities, cityDTO{Code: city.Code, Label: city.Label})
	}

	return ctx.JSON(resp)
}
