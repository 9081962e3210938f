package main

import (
	"log"
	"os"

	"github.com/Shravansapate/legislate-voice-aid/internal/entity"
	"github.com/Shravansapate/legislate-voice-aid/pkg/database"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

func main() {
	// 1. Load Environment Variables
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	// 2. Connect to Database using existing GORM helpers
	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	color.Cyan("🚀 Starting GORM Migration")

	// 3. Extensions (AutoMigrate doesn't manage these)
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp";`).Error; err != nil {
		log.Printf("Warn: Failed to create extension: %v. Continuing...", err)
	}

	// 4. AutoMigrate
	if err := db.AutoMigrate(&entity.Ngo{}); err != nil {
		color.Red("Migration failed: %v", err)
		os.Exit(1)
	}
	color.Green("✅ Schema migrated")

	// 5. Seed the directory if it's empty
	var count int64
	if err := db.Model(&entity.Ngo{}).Count(&count).Error; err != nil {
		color.Red("Count failed: %v", err)
		os.Exit(1)
	}
	if count > 0 {
		color.Yellow("Directory already holds %d centers, skipping seed", count)
		return
	}

	if err := seedNgos(db); err != nil {
		color.Red("Seed failed: %v", err)
		os.Exit(1)
	}
	color.Green("✅ Directory seeded")
}

func seedNgos(db *gorm.DB) error {
	ngos := []entity.Ngo{
		{
			Name:        "महिला कानूनी सहायता केंद्र",
			EnglishName: "Women Legal Aid Center",
			Location:    "Delhi",
			Region:      "north",
			Speciality:  "महिला अधिकार एवं घरेलू हिंसा",
			Languages:   datatypes.JSON([]byte(`["Hindi","English"]`)),
			Phone:       "+91-11-23385368",
			Whatsapp:    "+91-11-23385368",
			Website:     "https://ncw.nic.in",
		},
		{
			Name:        "राष्ट्रीय विधिक सेवा प्राधिकरण",
			EnglishName: "National Legal Services Authority",
			Location:    "Delhi",
			Region:      "north",
			Speciality:  "निःशुल्क कानूनी सहायता",
			Languages:   datatypes.JSON([]byte(`["Hindi","English"]`)),
			Phone:       "+91-11-23382778",
			Website:     "https://nalsa.gov.in",
		},
		{
			Name:        "ग्रामीण न्याय सेवा संस्थान",
			EnglishName: "Rural Justice Service Institute",
			Location:    "Lucknow",
			Region:      "north",
			Speciality:  "भूमि विवाद एवं किसान अधिकार",
			Languages:   datatypes.JSON([]byte(`["Hindi"]`)),
			Phone:       "+91-522-2623568",
			Whatsapp:    "+91-94150-12345",
		},
		{
			Name:        "मजदूर अधिकार मंच",
			EnglishName: "Workers Rights Forum",
			Location:    "Mumbai",
			Region:      "west",
			Speciality:  "श्रमिक अधिकार एवं मनरेगा",
			Languages:   datatypes.JSON([]byte(`["Hindi","Marathi","English"]`)),
			Phone:       "+91-22-24913546",
			Whatsapp:    "+91-98201-23456",
		},
		{
			Name:        "कायदेशीर मदत केंद्र",
			EnglishName: "Legal Help Center Pune",
			Location:    "Pune",
			Region:      "west",
			Speciality:  "ग्राहक संरक्षण",
			Languages:   datatypes.JSON([]byte(`["Marathi","Hindi"]`)),
			Phone:       "+91-20-26123457",
			Website:     "https://districts.ecourts.gov.in/pune",
		},
		{
			Name:        "న్యాయ సేవా కేంద్రం",
			EnglishName: "Nyaya Seva Kendram",
			Location:    "Hyderabad",
			Region:      "south",
			Speciality:  "పెన్షన్ మరియు సంక్షేమ పథకాలు",
			Languages:   datatypes.JSON([]byte(`["Telugu","Hindi","English"]`)),
			Phone:       "+91-40-23454782",
			Whatsapp:    "+91-90001-23456",
		},
		{
			Name:        "மக்கள் சட்ட உதவி மையம்",
			EnglishName: "People's Legal Aid Centre",
			Location:    "Chennai",
			Region:      "south",
			Speciality:  "Family and property disputes",
			Languages:   datatypes.JSON([]byte(`["Tamil","English"]`)),
			Phone:       "+91-44-28592750",
			Website:     "https://tnslsa.tn.gov.in",
		},
		{
			Name:        "পূর্বাঞ্চল আইনি সহায়তা",
			EnglishName: "Eastern Legal Aid Society",
			Location:    "Kolkata",
			Region:      "east",
			Speciality:  "RTI and welfare entitlements",
			Languages:   datatypes.JSON([]byte(`["Bengali","Hindi","English"]`)),
			Phone:       "+91-33-22486701",
			Whatsapp:    "+91-98300-12345",
		},
	}

	for i := range ngos {
		ngos[i].Id = uuid.New()
	}
	return db.Create(&ngos).Error
}
