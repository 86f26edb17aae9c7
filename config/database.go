package config

import (
	"fmt"
	"log"

	"led-admin-api/models"

	"github.com/glebarez/sqlite"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// InitDB connects, migrates and seeds the database. The dialector is
// selected by DB_DRIVER: sqlite (the default, file at DB_PATH) or mysql
// with the usual host/port/user DSN.
func InitDB(cfg *Config) error {
	logLevel := logger.Warn
	if !cfg.IsProduction() {
		logLevel = logger.Info
	}

	gormConfig := &gorm.Config{
		Logger: logger.New(
			log.New(LogWriter, "\r\n", log.LstdFlags),
			logger.Config{LogLevel: logLevel},
		),
	}

	var (
		db  *gorm.DB
		err error
	)

	switch cfg.DB.Driver {
	case "mysql":
		dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
			cfg.DB.Username,
			cfg.DB.Password,
			cfg.DB.Host,
			cfg.DB.Port,
			cfg.DB.Database,
		)
		db, err = gorm.Open(mysql.Open(dsn), gormConfig)
	case "sqlite", "":
		db, err = gorm.Open(sqlite.Open(cfg.DB.Path), gormConfig)
		if err == nil {
			// WAL keeps readers unblocked during admin writes; the busy
			// timeout covers the remaining writer contention.
			db.Exec("PRAGMA journal_mode=WAL")
			db.Exec("PRAGMA busy_timeout=10000")
			db.Exec("PRAGMA foreign_keys=ON")
		}
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", cfg.DB.Driver)
	}
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)

	DB = db

	if err := Migrate(db); err != nil {
		return err
	}
	if err := Seed(db); err != nil {
		return err
	}

	log.Println("Database connected successfully")
	return nil
}

// Migrate creates or updates the schema for every model.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.AdminUser{},
		&models.Product{},
		&models.ProductImage{},
		&models.ProductVideo{},
		&models.News{},
		&models.CaseStudy{},
		&models.Inquiry{},
		&models.QuoteRequest{},
		&models.PageContent{},
		&models.MediaFile{},
		&models.Setting{},
	)
}

// Seed inserts the default admin account, the sample catalog and the default
// settings on first run. Safe to call repeatedly.
func Seed(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.AdminUser{}).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		admin := models.AdminUser{
			Username:     "admin",
			PasswordHash: string(hash),
			Email:        "admin@example.com",
			Role:         models.RoleSuperAdmin,
		}
		if err := db.Create(&admin).Error; err != nil {
			return err
		}
	}

	if err := db.Model(&models.Product{}).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		products := []models.Product{
			{
				NameEn:         "Fine Pitch LED Display",
				NameZh:         "小间距LED显示屏",
				DescriptionEn:  "High-resolution indoor display with pixel pitch below 2.5mm, suited for control rooms and broadcast studios.",
				DescriptionZh:  "像素间距小于2.5mm的高分辨率室内显示屏，适用于控制室和演播室。",
				Category:       "indoor",
				Specifications: "Pixel pitch: P1.25/P1.56/P1.86/P2.5\nBrightness: 600-800 nits\nRefresh rate: 3840Hz",
				Features:       "Seamless splicing\nFront maintenance\nLow power consumption",
				Status:         models.ProductStatusActive,
			},
			{
				NameEn:         "Outdoor Advertising LED Display",
				NameZh:         "户外广告LED显示屏",
				DescriptionEn:  "IP65-rated high-brightness display for billboards and building facades.",
				DescriptionZh:  "IP65防护等级的高亮度显示屏，适用于广告牌和楼体外墙。",
				Category:       "outdoor",
				Specifications: "Pixel pitch: P4/P5/P6/P8/P10\nBrightness: 5500-7500 nits\nIP rating: IP65",
				Features:       "High brightness\nWeatherproof cabinet\nEnergy saving drive",
				Status:         models.ProductStatusActive,
			},
			{
				NameEn:         "Rental Stage LED Display",
				NameZh:         "租赁舞台LED显示屏",
				DescriptionEn:  "Lightweight die-cast aluminum cabinets with quick locks for events and stage rental.",
				DescriptionZh:  "轻量化压铸铝箱体，快速锁扣设计，适用于演出和舞台租赁。",
				Category:       "rental",
				Specifications: "Pixel pitch: P2.6/P2.9/P3.9\nCabinet: 500x500mm / 500x1000mm\nWeight: 7.5kg per cabinet",
				Features:       "Quick assembly\nCurved installation\nHigh refresh rate",
				Status:         models.ProductStatusActive,
			},
		}
		if err := db.Create(&products).Error; err != nil {
			return err
		}
	}

	if err := db.Model(&models.Setting{}).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		settings := []models.Setting{
			{Key: "site_name", Value: "LED Display Solutions", Description: "Public site name"},
			{Key: "contact_email", Value: "sales@example.com", Description: "Sales contact address shown on the site"},
			{Key: "contact_phone", Value: "+86-755-0000-0000", Description: "Sales phone number"},
			{Key: "company_address", Value: "Bao'an District, Shenzhen, China", Description: "Company address"},
		}
		if err := db.Create(&settings).Error; err != nil {
			return err
		}
	}

	if err := db.Model(&models.PageContent{}).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		blocks := []models.PageContent{
			{
				PageName:    "home",
				SectionName: "hero",
				ContentType: models.ContentTypeMixed,
				TitleEn:     "Professional LED Display Manufacturer",
				TitleZh:     "专业LED显示屏制造商",
				SubtitleEn:  "Indoor, outdoor and rental displays for every scenario",
				SubtitleZh:  "覆盖室内、户外与租赁全场景的显示方案",
				SortOrder:   1,
				Status:      models.ContentStatusActive,
			},
			{
				PageName:    "about",
				SectionName: "intro",
				ContentType: models.ContentTypeText,
				TitleEn:     "About Us",
				TitleZh:     "关于我们",
				BodyEn:      "We design and manufacture LED display systems for customers worldwide.",
				BodyZh:      "我们为全球客户设计和制造LED显示系统。",
				SortOrder:   1,
				Status:      models.ContentStatusActive,
			},
		}
		if err := db.Create(&blocks).Error; err != nil {
			return err
		}
	}

	return nil
}
