package catalog

// SeedProducts returns the default catalog used on first run, before any
// admin has managed products. Callers get a fresh copy.
func SeedProducts() []Product {
	seeds := []Product{
		{ID: 1, Name: "Smartphone X", Price: 14999, OriginalPrice: 17999, Rating: 3.3, ReviewCount: 245, Image: "/images/smartphone-x.jpg", Category: "Electronics", Brand: "Samsung", Discount: 16, Description: "A powerful smartphone with 5G support and a stunning display."},
		{ID: 2, Name: "Cotton T-Shirt", Price: 799, OriginalPrice: 999, Rating: 3.1, ReviewCount: 189, Image: "/images/cotton-tshirt.jpg", Category: "Clothing", Brand: "Smartees", Discount: 20, Description: "Comfortable black cotton t-shirt with a trendy design."},
		{ID: 3, Name: "Casual Shoes", Price: 799, OriginalPrice: 1999, Rating: 2.2, ReviewCount: 80, Image: "/images/casual-shoes.jpg", Category: "Footwear", Brand: "Nike", Discount: 60, Description: "Stylish casual shoes perfect for everyday wear."},
		{ID: 4, Name: "Wrist Watch", Price: 599, OriginalPrice: 1999, Rating: 4.3, ReviewCount: 200, Image: "/images/wrist-watch.jpg", Category: "Electronics", Brand: "Carlington", Discount: 70, Description: "Elegant wrist watch with a sleek black design."},
		{ID: 5, Name: "Handbag", Price: 1199, OriginalPrice: 1999, Rating: 3.1, ReviewCount: 90, Image: "/images/handbag.jpg", Category: "Clothing", Brand: "Lavie", Discount: 40, Description: "Chic handbag for women, ideal for daily use."},
		{ID: 6, Name: "Sandals & Floaters", Price: 499, OriginalPrice: 999, Rating: 4.0, ReviewCount: 70, Image: "/images/sandals.jpg", Category: "Footwear", Brand: "Myntra", Discount: 50, Description: "Comfortable sandals for casual outings."},
		{ID: 7, Name: "Kurta Set", Price: 699, OriginalPrice: 1999, Rating: 0, ReviewCount: 120, Image: "/images/kurta-set.jpg", Category: "Clothing", Brand: "Biba", Discount: 65, Description: "Traditional kurta set for festive occasions."},
		{ID: 8, Name: "Bluetooth Headphones", Price: 999, OriginalPrice: 3999, Rating: 2.2, ReviewCount: 150, Image: "/images/bt-headphones.jpg", Category: "Electronics", Brand: "BrandA", Discount: 75, Description: "Wireless headphones with noise cancellation."},
		{ID: 9, Name: "Printer", Price: 3999, OriginalPrice: 4999, Rating: 3.9, ReviewCount: 80, Image: "/images/printer.jpg", Category: "Electronics", Brand: "HP", Discount: 20, Description: "Compact printer for home and office use."},
		{ID: 10, Name: "Monitor", Price: 7999, OriginalPrice: 9999, Rating: 4.3, ReviewCount: 120, Image: "/images/monitor.jpg", Category: "Electronics", Brand: "Lenovo", Discount: 20, Description: "24-inch monitor with Full HD resolution."},
		{ID: 11, Name: "Camera", Price: 1999, OriginalPrice: 9999, Rating: 3.5, ReviewCount: 200, Image: "/images/camera.jpg", Category: "Electronics", Brand: "Canon", Discount: 80, Description: "DSLR camera for photography enthusiasts."},
		{ID: 12, Name: "External Hard Drive", Price: 3499, OriginalPrice: 4499, Rating: 4.1, ReviewCount: 90, Image: "/images/hard-drive.jpg", Category: "Electronics", Brand: "WD", Discount: 22, Description: "1TB external hard drive for data storage."},
		{ID: 13, Name: "Gaming Laptop", Price: 59999, OriginalPrice: 74999, Rating: 2.4, ReviewCount: 300, Image: "/images/gaming-laptop.jpg", Category: "Electronics", Brand: "Asus", Discount: 20, Description: "High-performance gaming laptop with RGB keyboard."},
		{ID: 14, Name: "Smartwatch", Price: 1999, OriginalPrice: 4999, Rating: 1.3, ReviewCount: 180, Image: "/images/smartwatch.jpg", Category: "Electronics", Brand: "Noise", Discount: 60, Description: "Smartwatch with fitness tracking features."},
		{ID: 15, Name: "Beauty Product", Price: 499, OriginalPrice: 999, Rating: 2.2, ReviewCount: 110, Image: "/images/beauty-kit.jpg", Category: "Beauty", Brand: "Lakme", Discount: 50, Description: "Makeup kit for daily beauty needs."},
		{ID: 16, Name: "Home Appliance", Price: 6999, OriginalPrice: 9999, Rating: 4.1, ReviewCount: 95, Image: "/images/home-appliance.jpg", Category: "Appliances", Brand: "Philips", Discount: 30, Description: "Multi-purpose home appliance for cooking."},
		{ID: 17, Name: "Electric Kettle", Price: 1299, OriginalPrice: 1999, Rating: 3.0, ReviewCount: 85, Image: "/images/kettle.jpg", Category: "Appliances", Brand: "Pigeon", Discount: 35, Description: "Electric kettle with fast boiling technology."},
		{ID: 18, Name: "Lipstick", Price: 299, OriginalPrice: 599, Rating: 2.3, ReviewCount: 130, Image: "/images/lipstick.jpg", Category: "Beauty", Brand: "Maybelline", Discount: 50, Description: "Long-lasting lipstick in vibrant shades."},
		{ID: 19, Name: "Jeans", Price: 1199, OriginalPrice: 2499, Rating: 3.2, ReviewCount: 160, Image: "/images/jeans.jpg", Category: "Clothing", Brand: "Levi's", Discount: 52, Description: "Slim-fit jeans for men, durable and stylish."},
		{ID: 20, Name: "Bluetooth Speaker", Price: 1499, OriginalPrice: 2999, Rating: 4.4, ReviewCount: 220, Image: "/images/bt-speaker.jpg", Category: "Electronics", Brand: "JBL", Discount: 50, Description: "Portable Bluetooth speaker with deep bass."},
		{ID: 21, Name: "Backpack", Price: 899, OriginalPrice: 1499, Rating: 1.1, ReviewCount: 75, Image: "/images/backpack.jpg", Category: "Clothing", Brand: "Wildcraft", Discount: 40, Description: "Spacious backpack for travel and daily use."},
		{ID: 22, Name: "Air Conditioner", Price: 29999, OriginalPrice: 39999, Rating: 4.5, ReviewCount: 250, Image: "/images/air-conditioner.jpg", Category: "Appliances", Brand: "LG", Discount: 25, Description: "Energy-efficient air conditioner with smart features."},
		{ID: 23, Name: "Sunglasses", Price: 599, OriginalPrice: 1299, Rating: 4.0, ReviewCount: 90, Image: "/images/sunglasses.jpg", Category: "Clothing", Brand: "Ray-Ban", Discount: 54, Description: "UV-protected sunglasses with a classic design."},
		{ID: 24, Name: "Electric Toothbrush", Price: 1999, OriginalPrice: 2999, Rating: 4.3, ReviewCount: 140, Image: "/images/toothbrush.jpg", Category: "Beauty", Brand: "Oral-B", Discount: 33, Description: "Electric toothbrush for superior cleaning."},
		{ID: 25, Name: "Gaming Console", Price: 34999, OriginalPrice: 44999, Rating: 2.6, ReviewCount: 320, Image: "/images/console.jpg", Category: "Electronics", Brand: "Sony", Discount: 22, Description: "Next-gen gaming console with 4K support."},
		{ID: 26, Name: "Winter Jacket", Price: 2499, OriginalPrice: 3999, Rating: 3.2, ReviewCount: 110, Image: "/images/winter-jacket.jpg", Category: "Clothing", Brand: "Columbia", Discount: 37, Description: "Warm winter jacket for cold weather."},
	}
	return seeds
}
