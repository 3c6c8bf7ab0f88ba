package main

import (
	"fmt"
	"log"
	"time"

	"golang.org/x/crypto/bcrypt"

	"servicehub/internal/database"
	"servicehub/internal/domain"
)

// Seeds a demo dataset: a few customers, providers around Lagos with
// coordinates, service categories, offers, and availability windows for
// the next three days.
func main() {
	db, err := database.Connect("servicehub.db")
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running migrations...")
	if err := database.Migrate(db); err != nil {
		log.Fatal("Migrate failed:", err)
	}

	// Cleanup old data (in safe order to avoid foreign key errors)
	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM paystack_payments")
	db.Exec("DELETE FROM reviews")
	db.Exec("DELETE FROM bookings")
	db.Exec("DELETE FROM availability_windows")
	db.Exec("DELETE FROM services")
	db.Exec("DELETE FROM categories")
	db.Exec("DELETE FROM providers")
	db.Exec("DELETE FROM customers")
	db.Exec("DELETE FROM users")

	// ================== CUSTOMERS ==================
	log.Println("Creating customers...")
	customerEmails := []string{"amina@mail.com", "chidi@gmail.com", "funke@yahoo.com"}
	for i, email := range customerEmails {
		hash, _ := bcrypt.GenerateFromPassword([]byte("customer123"), bcrypt.DefaultCost)
		user := domain.User{
			Email:        email,
			PasswordHash: string(hash),
			Name:         fmt.Sprintf("Customer %d", i+1),
			Phone:        fmt.Sprintf("+234 801 234 56%02d", i+10),
			Role:         domain.RoleCustomer,
		}
		db.Create(&user)
		db.Create(&domain.Customer{
			UserID: user.ID,
			Name:   user.Name,
			Phone:  user.Phone,
			Email:  user.Email,
		})
	}

	// ================== PROVIDERS ==================
	log.Println("Creating providers...")
	type providerSeed struct {
		email    string
		name     string
		address  string
		lat, lng float64
		rating   float64
	}
	seeds := []providerSeed{
		{"sparkle@cleaners.ng", "Sparkle Cleaners", "12 Awolowo Rd, Ikoyi", 6.4541, 3.3947, 4.8},
		{"fixit@plumbing.ng", "FixIt Plumbing", "5 Allen Ave, Ikeja", 6.6018, 3.3515, 4.2},
		{"brightspark@electrics.ng", "BrightSpark Electrics", "22 Admiralty Way, Lekki", 6.4478, 3.4723, 4.5},
	}
	providers := make([]domain.Provider, 0, len(seeds))
	for i, ps := range seeds {
		hash, _ := bcrypt.GenerateFromPassword([]byte("provider123"), bcrypt.DefaultCost)
		user := domain.User{
			Email:        ps.email,
			PasswordHash: string(hash),
			Name:         ps.name,
			Phone:        fmt.Sprintf("+234 802 345 67%02d", i+10),
			Role:         domain.RoleProvider,
		}
		db.Create(&user)

		lat, lng := ps.lat, ps.lng
		p := domain.Provider{
			UserID:    user.ID,
			Phone:     user.Phone,
			Bio:       fmt.Sprintf("%s, serving all of Lagos.", ps.name),
			Address:   ps.address,
			Rating:    ps.rating,
			Latitude:  &lat,
			Longitude: &lng,
		}
		db.Create(&p)
		providers = append(providers, p)
	}

	// ================== CATALOG ==================
	log.Println("Creating categories and services...")
	cleaning := domain.Category{Name: "Home Cleaning"}
	plumbing := domain.Category{Name: "Plumbing"}
	electrical := domain.Category{Name: "Electrical"}
	db.Create(&cleaning)
	db.Create(&plumbing)
	db.Create(&electrical)

	services := []domain.Service{
		{ProviderID: providers[0].ID, CategoryID: cleaning.ID, Title: "Deep home cleaning", Description: "Full apartment deep clean, supplies included.", Price: 15000, DurationMinutes: 180, IsAvailable: true},
		{ProviderID: providers[0].ID, CategoryID: cleaning.ID, Title: "Standard cleaning", Description: "Weekly maintenance clean.", Price: 8000, DurationMinutes: 120, IsAvailable: true},
		{ProviderID: providers[1].ID, CategoryID: plumbing.ID, Title: "Leak repair", Description: "Pipe and fixture leak diagnosis and repair.", Price: 12000, DurationMinutes: 90, IsAvailable: true},
		{ProviderID: providers[1].ID, CategoryID: cleaning.ID, Title: "Drain cleaning", Description: "Kitchen and bathroom drain unblocking.", Price: 9000, DurationMinutes: 60, IsAvailable: true},
		{ProviderID: providers[2].ID, CategoryID: electrical.ID, Title: "Wiring inspection", Description: "Full house wiring safety inspection.", Price: 20000, DurationMinutes: 120, IsAvailable: true},
	}
	for i := range services {
		db.Create(&services[i])
	}

	// ================== AVAILABILITY ==================
	log.Println("Creating availability windows...")
	today := time.Now().UTC().Truncate(24 * time.Hour)
	starts := []string{"09:00", "11:00", "14:00", "16:00"}
	ends := []string{"11:00", "13:00", "16:00", "18:00"}
	for _, p := range providers {
		for d := 0; d < 3; d++ {
			date := today.AddDate(0, 0, d+1)
			for i := range starts {
				db.Create(&domain.AvailabilityWindow{
					ProviderID: p.ID,
					Date:       date,
					StartTime:  starts[i],
					EndTime:    ends[i],
				})
			}
		}
	}

	log.Println("Seed complete.")
	log.Println("Customer login: amina@mail.com / customer123")
	log.Println("Provider login: sparkle@cleaners.ng / provider123")
}
