package server

import (
	"encoding/json"
	"errors"
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/tushyr/thekabar/internal/domain"
	apperrors "github.com/tushyr/thekabar/internal/errors"
	"github.com/tushyr/thekabar/internal/reminder"
)

func deviceParam(c echo.Context) (uuid.UUID, error) {
	device, err := uuid.Parse(c.Param("device"))
	if err != nil {
		return uuid.Nil, apperrors.ValidationError("invalid device id").WithField("device", c.Param("device"))
	}
	return device, nil
}

// setReminderRequest carries the raw intent so legacy bare-number payloads
// decode the same way as the current tagged shape.
type setReminderRequest struct {
	ShopID int             `json:"shopId"`
	Intent json.RawMessage `json:"intent"`
}

func (s *Server) handleSetReminder(c echo.Context) error {
	device, err := deviceParam(c)
	if err != nil {
		return err
	}

	var req setReminderRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.ValidationError("invalid request body")
	}

	// Unrecognized intents are a silent no-op, same as unknown shops.
	intent, ok := reminder.DecodeIntent(req.Intent)
	if !ok {
		return c.NoContent(204)
	}

	if err := s.reminders.Set(c.Request().Context(), device, req.ShopID, intent); err != nil {
		return apperrors.InternalError("failed to set reminder", err).WithField("device", device.String())
	}
	return c.NoContent(204)
}

func (s *Server) handleListReminders(c echo.Context) error {
	device, err := deviceParam(c)
	if err != nil {
		return err
	}

	reminders, err := s.reminders.List(c.Request().Context(), device)
	if err != nil {
		return apperrors.InternalError("failed to list reminders", err).WithField("device", device.String())
	}
	if reminders == nil {
		reminders = []domain.Reminder{}
	}
	return c.JSON(200, map[string]any{"reminders": reminders, "count": len(reminders)})
}

func (s *Server) handleActiveReminder(c echo.Context) error {
	device, err := deviceParam(c)
	if err != nil {
		return err
	}

	shopID, err := strconv.Atoi(c.QueryParam("shop"))
	if err != nil {
		return apperrors.ValidationError("invalid shop id").WithField("shop", c.QueryParam("shop"))
	}

	active, err := s.reminders.HasActiveReminder(c.Request().Context(), device, shopID)
	if err != nil {
		return apperrors.InternalError("failed to check reminder", err).WithField("device", device.String())
	}
	return c.JSON(200, map[string]bool{"active": active})
}

func (s *Server) handleListNotifications(c echo.Context) error {
	device, err := deviceParam(c)
	if err != nil {
		return err
	}

	notifications, err := s.reminders.Notifications(c.Request().Context(), device)
	if err != nil {
		return apperrors.InternalError("failed to list notifications", err).WithField("device", device.String())
	}
	if notifications == nil {
		notifications = []domain.Notification{}
	}
	return c.JSON(200, map[string]any{"notifications": notifications, "count": len(notifications)})
}

func (s *Server) handleMarkNotificationRead(c echo.Context) error {
	device, err := deviceParam(c)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return apperrors.ValidationError("invalid notification id").WithField("id", c.Param("id"))
	}

	if err := s.reminders.MarkNotificationRead(c.Request().Context(), device, id); err != nil {
		if errors.Is(err, domain.ErrDeviceNotFound) {
			return apperrors.NotFoundError("notification not found").WithField("id", id.String())
		}
		return apperrors.InternalError("failed to mark notification read", err).WithField("id", id.String())
	}
	return c.NoContent(204)
}

func shopIDParam(c echo.Context) (int, error) {
	shopID, err := strconv.Atoi(c.Param("shopID"))
	if err != nil {
		return 0, apperrors.ValidationError("invalid shop id").WithField("shopID", c.Param("shopID"))
	}
	return shopID, nil
}

func (s *Server) handleAddFavorite(c echo.Context) error {
	device, err := deviceParam(c)
	if err != nil {
		return err
	}
	shopID, err := shopIDParam(c)
	if err != nil {
		return err
	}

	if err := s.favorites.Add(c.Request().Context(), device, shopID); err != nil {
		return apperrors.InternalError("failed to add favorite", err).WithField("shop_id", shopID)
	}
	return c.NoContent(204)
}

func (s *Server) handleRemoveFavorite(c echo.Context) error {
	device, err := deviceParam(c)
	if err != nil {
		return err
	}
	shopID, err := shopIDParam(c)
	if err != nil {
		return err
	}

	if err := s.favorites.Remove(c.Request().Context(), device, shopID); err != nil {
		return apperrors.InternalError("failed to remove favorite", err).WithField("shop_id", shopID)
	}
	return c.NoContent(204)
}

func (s *Server) handleListFavorites(c echo.Context) error {
	device, err := deviceParam(c)
	if err != nil {
		return err
	}

	favorites, err := s.favorites.List(c.Request().Context(), device)
	if err != nil {
		return apperrors.InternalError("failed to list favorites", err).WithField("device", device.String())
	}
	if favorites == nil {
		favorites = []int{}
	}
	return c.JSON(200, map[string]any{"favorites": favorites})
}
