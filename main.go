package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	chatControllers "github.com/RAravinthRaj/medicine-finder/controllers/chat"
	"github.com/RAravinthRaj/medicine-finder/models"
	"github.com/RAravinthRaj/medicine-finder/routes"
	"github.com/RAravinthRaj/medicine-finder/store/gormstore"
)

func main() {
	log := logrus.New()
	log.Info("✅ Starting application...")

	// Load environment variables
	_ = godotenv.Load()

	apiKey := os.Getenv("OPENROUTER_API_KEY")
	if apiKey == "" {
		log.Fatal("❌ OPENROUTER_API_KEY not found in .env file. Please add it.")
	}

	// Init DB
	db := initDatabase(log)

	// Auto-migrate all tables
	if err := db.AutoMigrate(
		&models.User{},
		&models.Medicine{},
		&models.CartItem{},
		&models.Order{},
		&models.OrderItem{},
		&models.ChatMessage{},
	); err != nil {
		log.Fatalf("❌ AutoMigrate failed: %v", err)
	}

	// Seed the catalog and the admin account on first boot
	if err := seedCatalog(db); err != nil {
		log.Fatalf("❌ Catalog seed failed: %v", err)
	}
	if err := seedAdmin(db); err != nil {
		log.Fatalf("❌ Admin seed failed: %v", err)
	}

	// Chat responder: one OpenRouter client shared by every model in the
	// priority list
	client := chatControllers.NewOpenRouterClient(apiKey, os.Getenv("OPENROUTER_BASE_URL"))
	responder := chatControllers.NewResponder(client, chatModels(), log)

	// Gin setup
	r := gin.Default()

	// CORS settings
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-API-KEY"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Setup routes
	routes.SetupRoutes(r, db, gormstore.New(db), responder)

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Infof("🚀 Server running on port %s...", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

// initDatabase sets up the GORM DB connection
func initDatabase(log *logrus.Logger) *gorm.DB {
	if databaseURL := os.Getenv("DATABASE_URL"); databaseURL != "" {
		db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{})
		if err != nil {
			log.Fatalf("❌ DB connection failed: %v", err)
		}
		return db
	}

	host := os.Getenv("DB_HOST")
	port := os.Getenv("DB_PORT")
	user := os.Getenv("DB_USER")
	password := os.Getenv("DB_PASSWORD")
	dbname := os.Getenv("DB_NAME")

	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		host, user, password, dbname, port,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("❌ Failed to connect DB: %v", err)
	}
	return db
}

// chatModels returns the completion model priority list, CHAT_MODELS being a
// comma-separated override.
func chatModels() []string {
	raw := os.Getenv("CHAT_MODELS")
	if raw == "" {
		return nil
	}
	var parsed []string
	for _, m := range strings.Split(raw, ",") {
		if m = strings.TrimSpace(m); m != "" {
			parsed = append(parsed, m)
		}
	}
	return parsed
}

// seedCatalog populates the medicine table on an empty database.
func seedCatalog(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Medicine{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	medicines := []models.Medicine{
		{Name: "Paracetamol", Quantity: 100, Price: 5.99},
		{Name: "Ibuprofen", Quantity: 50, Price: 7.49},
		{Name: "Amoxicillin", Quantity: 20, Price: 12.99},
		{Name: "Cetirizine", Quantity: 30, Price: 6.49},
		{Name: "Vitamin C", Quantity: 80, Price: 4.99},
		{Name: "Omeprazole", Quantity: 25, Price: 15.99},
		{Name: "Azithromycin", Quantity: 15, Price: 18.99},
		{Name: "Metformin", Quantity: 40, Price: 9.99},
		{Name: "Aspirin", Quantity: 60, Price: 3.99},
		{Name: "Loratadine", Quantity: 35, Price: 8.49},
		{Name: "Lisinopril", Quantity: 30, Price: 11.99},
		{Name: "Atorvastatin", Quantity: 25, Price: 14.99},
		{Name: "Metoprolol", Quantity: 40, Price: 10.49},
		{Name: "Levothyroxine", Quantity: 50, Price: 9.49},
		{Name: "Ciprofloxacin", Quantity: 20, Price: 13.99},
		{Name: "Pantoprazole", Quantity: 30, Price: 16.49},
		{Name: "Doxycycline", Quantity: 15, Price: 17.99},
		{Name: "Hydrochlorothiazide", Quantity: 45, Price: 8.99},
		{Name: "Vitamin D", Quantity: 70, Price: 5.49},
		{Name: "Folic Acid", Quantity: 60, Price: 4.49},
	}
	return db.Create(&medicines).Error
}

// seedAdmin creates the default admin account when it does not exist yet.
func seedAdmin(db *gorm.DB) error {
	email := os.Getenv("ADMIN_EMAIL")
	if email == "" {
		email = "admin@example.com"
	}
	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		password = "admin123"
	}

	var existing models.User
	err := db.Where("email = ?", email).First(&existing).Error
	if err == nil {
		return nil
	}
	if err != gorm.ErrRecordNotFound {
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return db.Create(&models.User{
		ID:       uuid.NewString(),
		Email:    email,
		Password: hashed,
		IsAdmin:  true,
	}).Error
}
