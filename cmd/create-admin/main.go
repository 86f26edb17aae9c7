// Maintenance CLI: create an admin account or reset an existing password.
// cmd/create-admin/main.go
package main

import (
	"flag"
	"log"

	"led-admin-api/config"
	"led-admin-api/models"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	username := flag.String("username", "", "admin username")
	password := flag.String("password", "", "password to set")
	email := flag.String("email", "", "email address (create only)")
	role := flag.String("role", models.RoleAdmin, "role: admin or super_admin")
	flag.Parse()

	if *username == "" || *password == "" {
		log.Fatal("Usage: create-admin -username <name> -password <pass> [-email <addr>] [-role admin|super_admin]")
	}
	if !models.ValidRole(*role) {
		log.Fatalf("Invalid role %q", *role)
	}

	// Load .env
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	cfg := config.Load()
	if err := config.InitDB(cfg); err != nil {
		log.Fatal("Failed to initialize database: ", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(*password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal("Failed to hash password: ", err)
	}

	var user models.AdminUser
	if err := config.DB.Where("username = ?", *username).First(&user).Error; err == nil {
		if err := config.DB.Model(&user).Update("password_hash", string(hash)).Error; err != nil {
			log.Fatal("Failed to reset password: ", err)
		}
		log.Printf("Password reset for %s\n", *username)
		return
	}

	user = models.AdminUser{
		Username:     *username,
		PasswordHash: string(hash),
		Email:        *email,
		Role:         *role,
	}
	if err := config.DB.Create(&user).Error; err != nil {
		log.Fatal("Failed to create user: ", err)
	}

	log.Printf("Created %s account %s\n", *role, *username)
}
