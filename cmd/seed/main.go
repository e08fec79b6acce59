// Seeds the demo catalogue: four categories, a starter menu and ten tables.
// Safe to re-run; duplicates are skipped.
package main

import (
	"errors"
	"fmt"
	"log"

	"github.com/joho/godotenv"

	"emenu-backend/config"
	"emenu-backend/internal/domain"
	"emenu-backend/internal/storage"
)

type seedItem struct {
	name        string
	description string
	price       int
	image       string
}

var catalogue = []struct {
	slug      string
	name      string
	sortOrder int
	items     []seedItem
}{
	{
		slug: "appetizers", name: "Appetizers", sortOrder: 1,
		items: []seedItem{
			{"Goi Cuon", "Fresh spring rolls with shrimp, pork and herbs", 45000, "/images/goi-cuon.jpg"},
			{"Cha Gio", "Crispy fried spring rolls", 50000, "/images/cha-gio.jpg"},
			{"Goi Du Du", "Green papaya salad with beef jerky", 55000, "/images/goi-du-du.jpg"},
		},
	},
	{
		slug: "mains", name: "Main Dishes", sortOrder: 2,
		items: []seedItem{
			{"Pho Bo", "Beef noodle soup with rare steak and brisket", 65000, "/images/pho-bo.jpg"},
			{"Bun Cha", "Grilled pork with vermicelli and dipping sauce", 60000, "/images/bun-cha.jpg"},
			{"Com Tam", "Broken rice with grilled pork chop and egg", 55000, "/images/com-tam.jpg"},
			{"Banh Mi", "Baguette with pate, cold cuts and pickles", 35000, "/images/banh-mi.jpg"},
			{"Bo Luc Lac", "Shaking beef with garlic rice", 95000, "/images/bo-luc-lac.jpg"},
		},
	},
	{
		slug: "drinks", name: "Drinks", sortOrder: 3,
		items: []seedItem{
			{"Ca Phe Sua Da", "Vietnamese iced coffee with condensed milk", 30000, "/images/ca-phe-sua-da.jpg"},
			{"Tra Da", "Iced tea", 10000, "/images/tra-da.jpg"},
			{"Nuoc Mia", "Fresh sugarcane juice", 20000, "/images/nuoc-mia.jpg"},
			{"Sinh To Bo", "Avocado smoothie", 40000, "/images/sinh-to-bo.jpg"},
		},
	},
	{
		slug: "desserts", name: "Desserts", sortOrder: 4,
		items: []seedItem{
			{"Che Ba Mau", "Three-colour dessert with beans and jelly", 30000, "/images/che-ba-mau.jpg"},
			{"Banh Flan", "Caramel custard", 25000, "/images/banh-flan.jpg"},
		},
	},
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("[seed] no .env file found, using environment")
	}

	db := config.MustInitPostgres()
	defer db.Close()

	repo := storage.NewPostgresRepository(db)
	if err := repo.EnsureSchema(); err != nil {
		log.Fatal("Failed to ensure schema:", err)
	}

	for _, entry := range catalogue {
		category := &domain.Category{Slug: entry.slug, Name: entry.name, SortOrder: entry.sortOrder}
		if err := repo.CreateCategory(category); err != nil {
			if errors.Is(err, domain.ErrDuplicate) {
				log.Printf("[seed] category %s already exists, skipping", entry.slug)
				continue
			}
			log.Fatalf("[seed] create category %s: %v", entry.slug, err)
		}

		for _, item := range entry.items {
			menuItem := &domain.MenuItem{
				Name:        item.name,
				Description: item.description,
				Price:       item.price,
				Image:       item.image,
				CategoryID:  category.ID,
				IsAvailable: true,
			}
			if err := repo.CreateMenuItem(menuItem); err != nil {
				log.Fatalf("[seed] create menu item %s: %v", item.name, err)
			}
		}
		log.Printf("[seed] category %s seeded with %d items", entry.slug, len(entry.items))
	}

	for i := 1; i <= 10; i++ {
		table := &domain.Table{
			TableNumber: fmt.Sprintf("%02d", i),
			TableName:   fmt.Sprintf("Table %02d", i),
		}
		if err := repo.CreateTable(table); err != nil {
			if errors.Is(err, domain.ErrDuplicate) {
				log.Printf("[seed] table %s already exists, skipping", table.TableNumber)
				continue
			}
			log.Fatalf("[seed] create table %s: %v", table.TableNumber, err)
		}
	}

	log.Println("[seed] done")
}
