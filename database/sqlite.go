package database

import "gorm.io/gorm"

var sqliteTables = []string{
	`CREATE TABLE IF NOT EXISTS "users" (
		"id" TEXT PRIMARY KEY,
		"username" TEXT NOT NULL UNIQUE,
		"email" TEXT NOT NULL UNIQUE,
		"password_hash" TEXT NOT NULL,
		"full_name" TEXT,
		"phone" TEXT,
		"is_admin" INTEGER DEFAULT 0,
		"created_at" DATETIME,
		"updated_at" DATETIME,
		"deleted_at" DATETIME
	)`,
	`CREATE TABLE IF NOT EXISTS "cars" (
		"id" TEXT PRIMARY KEY,
		"name" TEXT NOT NULL,
		"brand" TEXT NOT NULL,
		"model" TEXT NOT NULL,
		"year" INTEGER,
		"price" REAL NOT NULL,
		"horsepower" INTEGER,
		"description" TEXT,
		"image_url" TEXT,
		"status" TEXT DEFAULT 'available',
		"engine" TEXT,
		"transmission" TEXT DEFAULT 'Automatic',
		"fuel_type" TEXT DEFAULT 'Petrol',
		"mileage" INTEGER DEFAULT 0,
		"exterior_color" TEXT,
		"interior_color" TEXT,
		"top_speed" INTEGER,
		"acceleration" REAL,
		"features" TEXT,
		"created_at" DATETIME,
		"updated_at" DATETIME
	)`,
	`CREATE INDEX IF NOT EXISTS idx_cars_status ON "cars"("status")`,
	`CREATE TABLE IF NOT EXISTS "car_images" (
		"id" TEXT PRIMARY KEY,
		"car_id" TEXT NOT NULL,
		"image_url" TEXT NOT NULL,
		"is_primary" INTEGER DEFAULT 0,
		"display_order" INTEGER DEFAULT 0,
		"created_at" DATETIME,
		CONSTRAINT fk_car_images_car FOREIGN KEY ("car_id") REFERENCES "cars"("id")
	)`,
	`CREATE TABLE IF NOT EXISTS "inquiries" (
		"id" TEXT PRIMARY KEY,
		"user_id" TEXT,
		"car_id" TEXT,
		"full_name" TEXT NOT NULL,
		"email" TEXT NOT NULL,
		"phone" TEXT,
		"vehicle_interest" TEXT,
		"message" TEXT NOT NULL,
		"status" TEXT DEFAULT 'new',
		"created_at" DATETIME
	)`,
	`CREATE TABLE IF NOT EXISTS "favorites" (
		"id" TEXT PRIMARY KEY,
		"user_id" TEXT NOT NULL,
		"car_id" TEXT NOT NULL,
		"created_at" DATETIME
	)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_favorite_user_car ON "favorites"("user_id","car_id")`,
	`CREATE TABLE IF NOT EXISTS "cart_items" (
		"id" TEXT PRIMARY KEY,
		"user_id" TEXT NOT NULL,
		"car_id" TEXT NOT NULL,
		"created_at" DATETIME
	)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_cart_user_car ON "cart_items"("user_id","car_id")`,
}

func createSQLiteTables(db *gorm.DB) error {
	for _, sql := range sqliteTables {
		if err := db.Exec(sql).Error; err != nil {
			return err
		}
	}
	return nil
}
