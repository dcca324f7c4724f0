package shared

import "monastery_tours/internal/domain"

const PlaceholderAvatar = "/api/placeholder/40/40"

// SeedSites returns a fresh copy of the built-in site catalog.
func SeedSites() []domain.Site {
	return []domain.Site{
		{
			ID:              "rumtek",
			Name:            "Rumtek Monastery",
			Location:        "Gangtok",
			Coords:          domain.Coords{Lat: 27.3, Lng: 88.58},
			Description:     "Seat of the Karmapa, rich murals, golden stupa",
			Highlights:      []string{"Golden Stupa", "Tibetan Art", "Karmapa Seat"},
			TravelTime:      "1 hour from Gangtok",
			NearestTown:     "Gangtok",
			Rating:          4.8,
			ReviewCount:     342,
			Established:     "1960s",
			SpecialFeatures: []string{"Daily prayers at dawn", "Museum with rare artifacts", "Traditional dance festivals"},
		},
		{
			ID:              "pemayangtse",
			Name:            "Pemayangtse Monastery",
			Location:        "Pelling",
			Coords:          domain.Coords{Lat: 27.32, Lng: 88.21},
			Description:     "17th century, breathtaking Himalayan views, famous for wooden art",
			Highlights:      []string{"Himalayan Views", "Wooden Sculptures", "Ancient Architecture"},
			TravelTime:      "2 hours from Gangtok",
			NearestTown:     "Pelling",
			Rating:          4.9,
			ReviewCount:     187,
			Established:     "1705",
			SpecialFeatures: []string{"Seven-tiered wooden sculpture", "Panoramic Kanchenjunga views", "Pure monks only tradition"},
		},
		{
			ID:              "tashiding",
			Name:            "Tashiding Monastery",
			Location:        "West Sikkim",
			Coords:          domain.Coords{Lat: 27.33, Lng: 88.26},
			Description:     "Known for its Bumchu festival, serene environment",
			Highlights:      []string{"Bumchu Festival", "Sacred Water", "Peaceful Setting"},
			TravelTime:      "3 hours from Gangtok",
			NearestTown:     "Yuksom",
			Rating:          4.7,
			ReviewCount:     124,
			Established:     "1717",
			SpecialFeatures: []string{"Holy water ceremony", "Pilgrimage site", "River confluence location"},
		},
		{
			ID:              "enchey",
			Name:            "Enchey Monastery",
			Location:        "Gangtok",
			Coords:          domain.Coords{Lat: 27.34, Lng: 88.61},
			Description:     "Famous for mask dance festivals",
			Highlights:      []string{"Mask Dances", "City Views", "Tantric Buddhism"},
			TravelTime:      "30 minutes from Gangtok center",
			NearestTown:     "Gangtok",
			Rating:          4.6,
			ReviewCount:     98,
			Established:     "1909",
			SpecialFeatures: []string{"Annual Cham dance", "Protective deities", "Urban monastery experience"},
		},
		{
			ID:              "ralang",
			Name:            "Ralang Monastery",
			Location:        "South Sikkim",
			Coords:          domain.Coords{Lat: 27.23, Lng: 88.53},
			Description:     "Vibrant festivals, new and old monastery complex",
			Highlights:      []string{"Festival Complex", "Modern Architecture", "Sacred Relics"},
			TravelTime:      "2.5 hours from Gangtok",
			NearestTown:     "Ravangla",
			Rating:          4.5,
			ReviewCount:     76,
			Established:     "1975 (new), 1768 (old)",
			SpecialFeatures: []string{"Dual monastery complex", "Kagyupa tradition", "Mountain backdrop"},
		},
	}
}

// SeedReviews returns the community feed every new session starts from.
func SeedReviews() []domain.Review {
	return []domain.Review{
		{
			ID:           "1",
			Author:       domain.Author{Name: "Anjali Sharma", Avatar: PlaceholderAvatar, Category: domain.CategoryVisitor},
			Rating:       5,
			Title:        "Breathtaking spiritual experience at Rumtek",
			Body:         "Rumtek was absolutely breathtaking! The murals are even more vivid in person than in photos. The virtual tour on this platform helped me plan my visit perfectly - I knew exactly what to expect and which areas to focus on. The monks were incredibly welcoming and shared beautiful stories about the monastery's history.",
			Images:       []string{"/assets/rumtek1.jpg", "/assets/rumtek2.jpg"},
			Likes:        24,
			Comments:     8,
			Site:         "Rumtek Monastery",
			Date:         "2 days ago",
			Verified:     true,
			UserComments: []string{"This is so true, I had the same experience!"},
		},
		{
			ID:           "2",
			Author:       domain.Author{Name: "Tenzin Dorji", Avatar: PlaceholderAvatar, Category: domain.CategoryMonk},
			Rating:       5,
			Title:        "Grateful for preserving our heritage",
			Body:         "As a monk who has spent years at these sacred places, I am deeply grateful for this digital preservation project. It allows people from around the world to connect with our spiritual heritage. Future generations will thank you for this important work. The virtual tours capture the essence beautifully.",
			Images:       []string{},
			Likes:        45,
			Comments:     12,
			Site:         "Multiple Monasteries",
			Date:         "1 week ago",
			Verified:     true,
			UserComments: []string{"A very thoughtful and important project."},
		},
		{
			ID:           "3",
			Author:       domain.Author{Name: "Michael Lee", Avatar: PlaceholderAvatar, Category: domain.CategoryVisitor},
			Rating:       5,
			Title:        "Perfect spiritual journey with AI guidance",
			Body:         "Just completed the Grand Circuit package and it was transformative! The AI guide recommended perfect routes based on my interests in meditation and photography. Every monastery had its unique character, and the local guides shared insights you won't find in any guidebook. Already planning my return trip!",
			Images:       []string{"/assets/rumtek3.jpg", "/assets/rumtek4.jpg", "/assets/rumtek5.jpg"},
			Likes:        31,
			Comments:     15,
			Site:         "Multiple Monasteries",
			Date:         "3 days ago",
			Verified:     true,
			UserComments: []string{"I'm looking forward to trying this too!"},
		},
		{
			ID:           "4",
			Author:       domain.Author{Name: "Priya Patel", Avatar: PlaceholderAvatar, Category: domain.CategoryVisitor},
			Rating:       4,
			Title:        "Pemayangtse views are otherworldly",
			Body:         "The sunrise view of Kanchenjunga from Pemayangtse monastery is something that will stay with me forever. The wooden sculptures inside are masterpieces of craftsmanship. Highly recommend staying overnight in Pelling to catch the early morning prayers.",
			Images:       []string{"/assets/rumtek6.jpg"},
			Likes:        18,
			Comments:     6,
			Site:         "Pemayangtse Monastery",
			Date:         "5 days ago",
			Verified:     true,
			UserComments: []string{"The sunrise there is truly magical."},
		},
	}
}
