package catalog

import "github.com/tushyr/thekabar/internal/domain"

// Seed returns the bundled Delhi NCR catalog. It backs the in-memory
// repository and the Postgres seed migration.
func Seed() []domain.Shop {
	return []domain.Shop{
		{
			ID: 1, Name: "Discovery Wines", Area: "Connaught Place",
			Address: "N-Block, Connaught Place, New Delhi", Phone: "+91-11-4152-2334",
			Type: domain.TypeStore, Speciality: "Imported single malts", IsPremium: true, Rating: 4.5,
			OpenTime: "11:00", CloseTime: "23:00",
			Coordinates: domain.Coordinates{Lat: 28.6315, Lng: 77.2197},
		},
		{
			ID: 2, Name: "Govt. Theka L-1 Saket", Area: "Saket",
			Address: "PVR Anupam Complex, Saket, New Delhi", Phone: "+91-11-2956-1180",
			Type: domain.TypeTheka, Speciality: "Budget whisky and beer", Rating: 3.8,
			OpenTime: "12:00", CloseTime: "22:00",
			Coordinates: domain.Coordinates{Lat: 28.5286, Lng: 77.2190},
		},
		{
			ID: 3, Name: "Sidecar", Area: "Greater Kailash II",
			Address: "M-Block Market, GK-2, New Delhi", Phone: "+91-98-1019-7942",
			Type: domain.TypeBar, Speciality: "Classic cocktails", IsPremium: true, Rating: 4.8,
			OpenTime: "18:00", CloseTime: "23:30",
			Coordinates: domain.Coordinates{Lat: 28.5345, Lng: 77.2433},
		},
		{
			ID: 4, Name: "Theka INCO Gurugram", Area: "Sector 29",
			Address: "Leisure Valley Road, Sector 29, Gurugram", Phone: "+91-12-4420-0529",
			Type: domain.TypeTheka, Speciality: "Craft beer on tap", Rating: 4.2,
			OpenTime: "12:00", CloseTime: "23:45",
			Coordinates: domain.Coordinates{Lat: 28.4595, Lng: 77.0638},
		},
		{
			ID: 5, Name: "The Piano Man Jazz Club", Area: "Safdarjung Enclave",
			Address: "B-6/7, Commercial Complex, Safdarjung, New Delhi", Phone: "+91-11-4131-5201",
			Type: domain.TypeBar, Speciality: "Live jazz and wine", IsPremium: true, Rating: 4.7,
			OpenTime: "19:00", CloseTime: "23:00",
			Coordinates: domain.Coordinates{Lat: 28.5676, Lng: 77.1905},
		},
		{
			ID: 6, Name: "Noida Wine Shop Sector 18", Area: "Sector 18",
			Address: "Atta Market, Sector 18, Noida", Phone: "+91-12-0251-6677",
			Type: domain.TypeStore, Speciality: "Wine and vodka", Rating: 3.5,
			OpenTime: "10:00", CloseTime: "22:00",
			Coordinates: domain.Coordinates{Lat: 28.5708, Lng: 77.3260},
		},
		{
			ID: 7, Name: "Lord of the Drinks", Area: "Connaught Place",
			Address: "H-Block, Connaught Place, New Delhi", Phone: "+91-88-2618-1144",
			Type: domain.TypeBar, Speciality: "Party cocktails", Rating: 4.1,
			OpenTime: "12:00", CloseTime: "23:59",
			Coordinates: domain.Coordinates{Lat: 28.6328, Lng: 77.2165},
		},
		{
			ID: 8, Name: "Govt. Theka Mayur Vihar", Area: "Mayur Vihar Phase 1",
			Address: "Acharya Niketan Market, Mayur Vihar, Delhi", Phone: "+91-11-2275-4418",
			Type: domain.TypeTheka, Speciality: "Country liquor and rum", Rating: 3.2,
			OpenTime: "12:00", CloseTime: "21:30",
			Coordinates: domain.Coordinates{Lat: 28.6063, Lng: 77.2930},
		},
	}
}
