package constants

// Option catalogs the builder can bulk-load into a choice field. Loading a
// catalog replaces the field's option list outright.
var PresetCatalogs = map[string][]string{
	"cars": {
		"Toyota", "Volkswagen", "Ford", "Fiat", "Chevrolet", "Honda", "Hyundai",
		"Jeep", "Renault", "Nissan", "BMW", "Mercedes-Benz", "Audi", "Kia",
		"Mitsubishi", "Land Rover", "Volvo", "Peugeot", "Citroën", "Chery",
		"JAC", "Suzuki", "Subaru", "Ram",
	},
	"bikes": {
		"Honda", "Yamaha", "Kawasaki", "Suzuki", "BMW Motorrad", "Triumph",
		"Harley-Davidson", "Ducati", "KTM", "Royal Enfield", "Dafra",
		"Shineray", "Indian", "Bajaj",
	},
	"trucks": {
		"Mercedes-Benz", "Volvo Trucks", "Scania", "Volkswagen Caminhões",
		"Iveco", "DAF", "Ford Trucks", "MAN", "Foton", "Sinotruk",
		"International", "MWM",
	},
	"truck_models": {
		"Volvo FH 540", "Scania R 450", "VW Constellation 24.280",
		"MB Actros 2651", "Volvo VM 270", "Scania G 420", "Iveco Stralis",
		"MB Axor 2544", "VW Meteor", "Ford Cargo 2429",
	},
	"machines": {
		"Caterpillar (CAT)", "JCB", "Case CE", "Komatsu", "John Deere",
		"New Holland", "Sany", "Volvo CE", "Bobcat", "Hyundai CE",
		"Massey Ferguson", "Valtra", "LS Tractor", "Yanmar", "XCMG", "LiuGong",
	},
	"types": {
		"Carro Passeio", "Picape / SUV", "Caminhão Leve (VUC)", "Caminhão Toco",
		"Caminhão Truck", "Caminhão Traçado", "Cavalo Mecânico", "Moto",
		"Scooter", "Máquina Agrícola", "Retroescavadeira",
		"Escavadeira Hidráulica", "Pá Carregadeira", "Rolo Compactador",
		"Van / Furgão", "Ônibus / Micro",
	},
}

// Brands offered by the guided vehicle selector, per category.
var BrandsByCategory = map[string][]string{
	"car": {
		"Toyota", "Volkswagen", "Ford", "Fiat", "Chevrolet", "Honda", "Hyundai",
		"Jeep", "Renault", "Nissan", "BMW", "Mercedes-Benz", "Audi", "Kia",
		"Mitsubishi", "Land Rover", "Volvo", "Peugeot", "Citroën", "Chery", "Ram",
	},
	"bike": {
		"Honda", "Yamaha", "Kawasaki", "Suzuki", "BMW Motorrad", "Triumph",
		"Harley-Davidson", "Ducati", "KTM", "Royal Enfield",
	},
	"truck": {
		"Mercedes-Benz", "Volvo Trucks", "Scania", "Volkswagen Caminhões",
		"Iveco", "DAF", "Ford Trucks", "MAN",
	},
	"machine": {
		"Caterpillar (CAT)", "JCB", "Case CE", "Komatsu", "John Deere",
		"New Holland", "Sany", "Volvo CE",
	},
}

// Truck models offered by the guided selector once a brand is chosen.
var ModelsByBrand = map[string][]string{
	"Mercedes-Benz":        {"Actros 2651", "Axor 2544", "Accelo 1016", "Atego 2426"},
	"Volvo Trucks":         {"FH 460", "FH 540", "VM 270", "VM 330"},
	"Scania":               {"R 450", "R 500", "G 420", "P 320"},
	"Volkswagen Caminhões": {"Constellation 24.280", "Delivery 11.180", "Meteor 29.520"},
	"Iveco":                {"Stralis", "Daily", "Trakker", "Hi-Way"},
	"DAF":                  {"XF 530", "CF 410", "XF 480"},
	"Ford Trucks":          {"Cargo 2429", "Cargo 816", "F-4000"},
	"MAN":                  {"TGX 28.440", "TGX 29.480"},
}

// Label hints the synchronizer matches against choice-field labels,
// case-insensitive substring. Templates are user-authored in Portuguese or
// English, so both vocabularies are listed.
var (
	CategoryLabelHints = []string{"categoria", "tipo", "category"}
	BrandLabelHints    = []string{"marca", "brand"}
)
