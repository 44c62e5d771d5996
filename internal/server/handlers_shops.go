package server

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/tushyr/thekabar/internal/catalog"
	"github.com/tushyr/thekabar/internal/domain"
	apperrors "github.com/tushyr/thekabar/internal/errors"
)

// shopListing is a catalog entry annotated with derived display state.
type shopListing struct {
	domain.Shop
	IsOpen        bool                 `json:"isOpen"`
	StatusText    string               `json:"statusText"`
	MapsURL       string               `json:"mapsUrl"`
	ReportSummary domain.ReportSummary `json:"reportSummary"`
}

func (s *Server) annotate(shop domain.Shop) shopListing {
	now := s.clock.Now()
	return shopListing{
		Shop:          shop,
		IsOpen:        catalog.IsOpenAt(&shop, now),
		StatusText:    catalog.StatusText(&shop, now),
		MapsURL:       catalog.MapsURL(&shop),
		ReportSummary: s.aggregator.Summarize(shop.ID),
	}
}

func (s *Server) handleListShops(c echo.Context) error {
	ctx := c.Request().Context()

	shops, err := s.shops.List(ctx)
	if err != nil {
		return apperrors.InternalError("failed to list shops", err)
	}

	query := catalog.Query{
		Search:   c.QueryParam("q"),
		Category: c.QueryParam("category"),
		OpenNow:  c.QueryParam("open_now") == "true",
	}
	filtered := catalog.Filter(shops, query, s.clock.Now())

	listings := make([]shopListing, 0, len(filtered))
	for _, shop := range filtered {
		listings = append(listings, s.annotate(shop))
	}

	return c.JSON(200, map[string]any{
		"shops": listings,
		"count": len(listings),
	})
}

// reportRequest uses a pointer so a missing isOpen is distinguishable from
// false and rejected.
type reportRequest struct {
	IsOpen *bool `json:"isOpen"`
}

func (s *Server) handleReport(c echo.Context) error {
	shopID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return apperrors.ValidationError("invalid shop id").WithField("id", c.Param("id"))
	}

	var req reportRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.ValidationError("invalid request body")
	}
	if req.IsOpen == nil {
		return apperrors.ValidationError("isOpen must be a boolean")
	}

	ctx := c.Request().Context()

	shop, err := s.aggregator.Record(ctx, shopID, *req.IsOpen)
	if err != nil {
		if errors.Is(err, domain.ErrShopNotFound) {
			return apperrors.NotFoundError("shop not found").WithField("shop_id", shopID)
		}
		return apperrors.InternalError("failed to record report", err).WithField("shop_id", shopID)
	}

	listing := s.annotate(*shop)
	s.hub.Publish(domain.StatusUpdate{
		ShopID:        shop.ID,
		UserReported:  shop.UserReported,
		ReportSummary: listing.ReportSummary,
	})

	if err := c.JSON(200, map[string]any{"ok": true, "shop": listing}); err != nil {
		return fmt.Errorf("failed to send JSON response: %w", err)
	}
	return nil
}
