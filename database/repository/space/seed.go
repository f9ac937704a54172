package spaceRepo

import "quickcowork/models"

// seedSpaces is the fixed catalog loaded at process start. Order here is the
// display order.
func seedSpaces() []models.Space {
	return []models.Space{
		{
			ID:           "1",
			Title:        "Creative Office Downtown",
			Type:         models.SpaceTypeOffice,
			Price:        200,
			Location:     "Delhi",
			Address:      "Connaught Place, New Delhi",
			Images:       []string{"/assets/office-space-1.jpg", "/assets/office-space-1.jpg", "/assets/office-space-1.jpg"},
			Rating:       4.8,
			ReviewCount:  25,
			Description:  "A modern creative office space with floor-to-ceiling windows, exposed brick walls, and contemporary furniture.",
			Amenities:    []string{"WiFi", "Parking", "Coffee", "Meeting Room", "AC"},
			Capacity:     10,
			Availability: []string{"9:00 AM", "10:00 AM", "2:00 PM", "3:00 PM"},
		},
		{
			ID:           "2",
			Title:        "Modern Kitchen Studio",
			Type:         models.SpaceTypeKitchen,
			Price:        300,
			Location:     "Mumbai",
			Address:      "Bandra West, Mumbai",
			Images:       []string{"/assets/kitchen-space-1.jpg", "/assets/kitchen-space-1.jpg", "/assets/kitchen-space-1.jpg"},
			Rating:       4.7,
			ReviewCount:  18,
			Description:  "Professional commercial kitchen with stainless steel appliances and marble countertops.",
			Amenities:    []string{"Industrial Stove", "Refrigeration", "Dishwasher", "Storage", "Parking"},
			Capacity:     8,
			Availability: []string{"8:00 AM", "9:00 AM", "1:00 PM", "4:00 PM"},
		},
		{
			ID:           "3",
			Title:        "Art Studio Loft",
			Type:         models.SpaceTypeStudio,
			Price:        150,
			Location:     "Bangalore",
			Address:      "Koramangala, Bangalore",
			Images:       []string{"/assets/studio-space-1.jpg", "/assets/studio-space-1.jpg", "/assets/studio-space-1.jpg"},
			Rating:       4.9,
			ReviewCount:  32,
			Description:  "Spacious art studio with high ceilings, large windows, and creative workspace setup.",
			Amenities:    []string{"Natural Light", "Easels", "Storage", "WiFi", "Parking"},
			Capacity:     6,
			Availability: []string{"10:00 AM", "11:00 AM", "2:00 PM", "5:00 PM"},
		},
		{
			ID:           "4",
			Title:        "Executive Conference Room",
			Type:         models.SpaceTypeOffice,
			Price:        400,
			Location:     "Gurgaon",
			Address:      "Cyber City, Gurgaon",
			Images:       []string{"/assets/office-space-1.jpg", "/assets/office-space-1.jpg", "/assets/office-space-1.jpg"},
			Rating:       4.6,
			ReviewCount:  15,
			Description:  "Premium executive conference room with state-of-the-art presentation equipment.",
			Amenities:    []string{"Projector", "WiFi", "Whiteboard", "AC", "Parking", "Catering"},
			Capacity:     20,
			Availability: []string{"9:00 AM", "11:00 AM", "2:00 PM", "4:00 PM"},
		},
		{
			ID:           "5",
			Title:        "Culinary Workshop Space",
			Type:         models.SpaceTypeKitchen,
			Price:        250,
			Location:     "Pune",
			Address:      "Koregaon Park, Pune",
			Images:       []string{"/assets/kitchen-space-1.jpg", "/assets/kitchen-space-1.jpg", "/assets/kitchen-space-1.jpg"},
			Rating:       4.8,
			ReviewCount:  22,
			Description:  "Perfect for cooking classes and culinary workshops with professional equipment.",
			Amenities:    []string{"Cooking Equipment", "Refrigeration", "Tables", "WiFi", "Parking"},
			Capacity:     12,
			Availability: []string{"9:00 AM", "12:00 PM", "3:00 PM", "6:00 PM"},
		},
		{
			ID:           "6",
			Title:        "Photography Studio",
			Type:         models.SpaceTypeStudio,
			Price:        350,
			Location:     "Chennai",
			Address:      "T. Nagar, Chennai",
			Images:       []string{"/assets/studio-space-1.jpg", "/assets/studio-space-1.jpg", "/assets/studio-space-1.jpg"},
			Rating:       4.7,
			ReviewCount:  28,
			Description:  "Professional photography studio with lighting equipment and backdrop options.",
			Amenities:    []string{"Lighting Equipment", "Backdrops", "WiFi", "AC", "Parking"},
			Capacity:     8,
			Availability: []string{"10:00 AM", "1:00 PM", "3:00 PM", "5:00 PM"},
		},
	}
}
