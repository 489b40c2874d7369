package handlers

import (
	"context"

	"github.com/lac-hong-legacy/guestbook_api/dto"
)

type GuestbookServiceInterface interface {
	Submit(ctx context.Context, name, message, clientIdentifier string) (*dto.SubmitEntryResponse, error)
	List(ctx context.Context) ([]dto.GuestbookEntryResponse, error)
	Stats(ctx context.Context) (*dto.GuestbookStatsResponse, error)
}
