package handler

import "github.com/xw1nchester/protech-admin/internal/notification"

type ConfirmationRequest struct {
	Confirmed *bool `json:"confirmed" validate:"required"`
}

type StateResponse struct {
	Snackbar      notification.Snackbar      `json:"snackbar"`
	ConfirmDialog notification.ConfirmDialog `json:"confirmDialog"`
}
