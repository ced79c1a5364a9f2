package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-rest-session/internal/config"
	"github.com/MKhiriev/go-rest-session/internal/store"
	"github.com/MKhiriev/go-rest-session/models"
)

var demoItems = []models.NewItem{
	{Name: "Cà phê sữa đá", Status: models.ItemStatusActive, Tags: []string{"drink", "coffee"}, Price: 35000},
	{Name: "Bánh mì thịt", Status: models.ItemStatusActive, Tags: []string{"food"}, Price: 25000},
	{Name: "Phở bò tái", Status: models.ItemStatusActive, Tags: []string{"food", "soup"}, Price: 65000},
	{Name: "Trà đá", Status: models.ItemStatusActive, Tags: []string{"drink"}, Price: 5000},
	{Name: "Bún chả Hà Nội", Status: models.ItemStatusDraft, Tags: []string{"food"}, Price: 55000},
	{Name: "Sinh tố bơ", Status: models.ItemStatusDraft, Tags: []string{"drink", "fruit"}, Price: 40000},
	{Name: "Gỏi cuốn", Status: models.ItemStatusActive, Tags: []string{"food", "fresh"}, Price: 30000},
	{Name: "Cơm tấm sườn", Status: models.ItemStatusActive, Tags: []string{"food"}, Price: 50000},
	{Name: "Nước mía", Status: models.ItemStatusArchived, Tags: []string{"drink"}, Price: 15000},
	{Name: "Chè ba màu", Status: models.ItemStatusActive, Tags: []string{"dessert"}, Price: 20000},
	{Name: "Bánh xèo", Status: models.ItemStatusActive, Tags: []string{"food"}, Price: 45000},
	{Name: "Cà phê trứng", Status: models.ItemStatusActive, Tags: []string{"drink", "coffee"}, Price: 45000},
}

// Seed registers the configured admin account and the demo item list. A
// store that already holds the admin is considered seeded and is left
// untouched.
func (s *Services) Seed(ctx context.Context, cfg config.Auth) error {
	admin := models.User{Login: cfg.AdminLogin, Name: "Administrator", Role: models.RoleAdmin}
	if _, err := s.AuthService.RegisterUser(ctx, admin, cfg.AdminPassword); err != nil {
		if errors.Is(err, store.ErrLoginAlreadyExists) {
			return nil
		}
		return fmt.Errorf("error seeding admin account: %w", err)
	}

	for _, item := range demoItems {
		if _, err := s.ItemService.CreateItem(ctx, item); err != nil {
			return fmt.Errorf("error seeding item %q: %w", item.Name, err)
		}
	}

	return nil
}
