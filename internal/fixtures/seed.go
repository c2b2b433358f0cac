package fixtures

import (
	"context"
	"fmt"

	"github.com/bilgin-hr/puantaj-backend-go/internal/domain/employee"
	"github.com/bilgin-hr/puantaj-backend-go/internal/domain/location"
	"github.com/bilgin-hr/puantaj-backend-go/internal/domain/user"
	"golang.org/x/crypto/bcrypt"
)

// seedLocations is the fixed branch network of the demo dataset.
var seedLocations = []location.Location{
	{Code: "LOK001", Name: "İstanbul Merkez", DefaultHours: 8},
	{Code: "LOK002", Name: "Ankara", DefaultHours: 8},
	{Code: "LOK003", Name: "İzmir", DefaultHours: 8},
	{Code: "LOK004", Name: "Bursa", DefaultHours: 8},
	{Code: "LOK005", Name: "Antalya", DefaultHours: 8},
	{Code: "LOK006", Name: "Adana", DefaultHours: 8},
	{Code: "LOK007", Name: "Gaziantep", DefaultHours: 8},
	{Code: "LOK008", Name: "Konya", DefaultHours: 8},
	{Code: "LOK009", Name: "Mersin", DefaultHours: 8},
	{Code: "LOK010", Name: "Kayseri", DefaultHours: 8},
	{Code: "LOK011", Name: "Trabzon", DefaultHours: 8},
	{Code: "LOK012", Name: "Samsun", DefaultHours: 8},
	{Code: "LOK013", Name: "Denizli", DefaultHours: 8},
	{Code: "LOK014", Name: "Eskişehir", DefaultHours: 8},
}

var seedNames = []string{"Ahmet Yılmaz", "Ayşe Demir", "Mehmet Kaya"}

// Seed loads the demo dataset: the branch network, three employees per
// branch with sicil numbers counting up from 05001, one admin login and one
// USER login per branch.
//
//	admin / Admin123!
//	user1..user14 / User123!
func Seed(
	ctx context.Context,
	locationRepo location.LocationRepository,
	employeeRepo employee.EmployeeRepository,
	userRepo user.UserRepository,
) error {
	adminHash, err := bcrypt.GenerateFromPassword([]byte("Admin123!"), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}
	userHash, err := bcrypt.GenerateFromPassword([]byte("User123!"), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash user password: %w", err)
	}

	if _, err := userRepo.Create(ctx, user.User{
		Username:     "admin",
		PasswordHash: string(adminHash),
		Role:         user.RoleAdmin,
		FullName:     "Sistem Yöneticisi",
		Active:       true,
	}); err != nil {
		return fmt.Errorf("failed to seed admin user: %w", err)
	}

	sid := 5001
	for i, seed := range seedLocations {
		loc, err := locationRepo.Create(ctx, seed)
		if err != nil {
			return fmt.Errorf("failed to seed location %s: %w", seed.Code, err)
		}

		for j, name := range seedNames {
			if _, err := employeeRepo.Create(ctx, employee.Employee{
				SicilNo:    fmt.Sprintf("%05d", sid),
				FullName:   name,
				LocationID: loc.ID,
				Duty:       employee.Duties[j%len(employee.Duties)],
				HireDate:   "01.01.2023",
				Active:     true,
			}); err != nil {
				return fmt.Errorf("failed to seed employee %05d: %w", sid, err)
			}
			sid++
		}

		locationID := loc.ID
		if _, err := userRepo.Create(ctx, user.User{
			Username:     fmt.Sprintf("user%d", i+1),
			PasswordHash: string(userHash),
			Role:         user.RoleUser,
			LocationID:   &locationID,
			FullName:     fmt.Sprintf("%s Yetkilisi", loc.Name),
			Active:       true,
		}); err != nil {
			return fmt.Errorf("failed to seed user for %s: %w", loc.Code, err)
		}
	}
	return nil
}
