package database

import (
	"log"

	"prestige-backend/models"

	"gorm.io/gorm"
)

func intPtr(v int) *int { return &v }

func sampleCars() []models.Car {
	return []models.Car{
		{
			Name:        "BMW M5 Competition",
			Brand:       "BMW",
			Model:       "M5 Competition",
			Year:        2024,
			Price:       110000,
			Horsepower:  intPtr(625),
			Description: "The ultimate expression of performance luxury. With 625 horsepower and cutting-edge technology, this sedan redefines the boundaries of speed and sophistication.",
			ImageURL:    "https://images.unsplash.com/photo-1555215695-3004980ad54e?w=800&h=600&fit=crop",
		},
		{
			Name:        "Mercedes-Benz S-Class",
			Brand:       "Mercedes-Benz",
			Model:       "S-Class",
			Year:        2024,
			Price:       115000,
			Horsepower:  intPtr(429),
			Description: "The pinnacle of automotive luxury and innovation. Experience unparalleled comfort, advanced technology, and timeless elegance in every journey.",
			ImageURL:    "https://images.unsplash.com/photo-1618843479313-40f8afb4b4d8?w=800&h=600&fit=crop",
		},
		{
			Name:        "Porsche 911 Turbo S",
			Brand:       "Porsche",
			Model:       "911 Turbo S",
			Year:        2024,
			Price:       230000,
			Horsepower:  intPtr(640),
			Description: "An icon perfected through generations. This masterpiece delivers breathtaking performance with 640 horsepower while maintaining the legendary 911 silhouette.",
			ImageURL:    "https://images.unsplash.com/photo-1503376780353-7e6692767b70?w=800&h=600&fit=crop",
		},
		{
			Name:        "Audi RS7 Sportback",
			Brand:       "Audi",
			Model:       "RS7 Sportback",
			Year:        2024,
			Price:       125000,
			Horsepower:  intPtr(591),
			Description: "Where aggressive design meets refined luxury. The RS7 combines a powerful twin-turbo V8 with sophisticated Quattro all-wheel drive for uncompromising performance.",
			ImageURL:    "https://images.unsplash.com/photo-1606664515524-ed2f786a0bd6?w=800&h=600&fit=crop",
		},
		{
			Name:        "Lamborghini Huracán EVO",
			Brand:       "Lamborghini",
			Model:       "Huracán EVO",
			Year:        2024,
			Price:       275000,
			Horsepower:  intPtr(631),
			Description: "Italian passion incarnate. The Huracán EVO delivers visceral supercar thrills with its naturally aspirated V10 engine and razor-sharp handling dynamics.",
			ImageURL:    "https://images.unsplash.com/photo-1544636331-e26879cd4d9b?w=800&h=600&fit=crop",
		},
		{
			Name:        "Rolls-Royce Ghost",
			Brand:       "Rolls-Royce",
			Model:       "Ghost",
			Year:        2024,
			Price:       350000,
			Horsepower:  intPtr(563),
			Description: "The epitome of luxury motoring. Handcrafted to perfection, the Ghost offers an unparalleled sanctuary of tranquility, bespoke craftsmanship, and effortless power.",
			ImageURL:    "https://images.unsplash.com/photo-1563720360172-67b8f3dce741?w=800&h=600&fit=crop",
		},
	}
}

// SeedSampleCars fills an empty inventory with the showroom sample cars.
func SeedSampleCars(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Car{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	cars := sampleCars()
	for i := range cars {
		cars[i].Status = models.CarStatusAvailable
		cars[i].Transmission = "Automatic"
		cars[i].FuelType = "Petrol"
	}

	if err := db.Omit("Images").Create(&cars).Error; err != nil {
		return err
	}

	log.Printf("Seeded %d sample cars", len(cars))
	return nil
}
