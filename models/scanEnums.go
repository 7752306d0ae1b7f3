package models

// Terminal is a sorting facility a piece can be scanned at.
type Terminal struct {
	Name     string
	City     string
	Province string
	FSA      string
}

var Terminals = []Terminal{
	{Name: "Toronto Gateway", City: "Toronto", Province: "ON", FSA: "M9W"},
	{Name: "Mississauga Hub", City: "Mississauga", Province: "ON", FSA: "L5T"},
	{Name: "Ottawa Depot", City: "Ottawa", Province: "ON", FSA: "K1G"},
	{Name: "Montreal Ouest", City: "Montreal", Province: "QC", FSA: "H4S"},
	{Name: "Quebec Centre", City: "Quebec", Province: "QC", FSA: "G1N"},
	{Name: "Winnipeg Depot", City: "Winnipeg", Province: "MB", FSA: "R3H"},
	{Name: "Calgary Hub", City: "Calgary", Province: "AB", FSA: "T2C"},
	{Name: "Edmonton Depot", City: "Edmonton", Province: "AB", FSA: "T6E"},
	{Name: "Vancouver Gateway", City: "Richmond", Province: "BC", FSA: "V6X"},
	{Name: "Halifax Depot", City: "Halifax", Province: "NS", FSA: "B3K"},
}

// ScanEvent is an event code with its bilingual descriptions.
type ScanEvent struct {
	Code   string
	DescEn string
	DescFr string
}

var ScanEvents = []ScanEvent{
	{Code: "SCN", DescEn: "Scanned", DescFr: "Numérisé"},
	{Code: "DEL", DescEn: "Delivered", DescFr: "Livré"},
	{Code: "RTS", DescEn: "Returned", DescFr: "Retourné"},
	{Code: "PRC", DescEn: "Processed", DescFr: "Traité"},
	{Code: "OFD", DescEn: "Out for delivery", DescFr: "En cours de livraison"},
	{Code: "ATT", DescEn: "Delivery attempted", DescFr: "Tentative de livraison"},
}

var (
	TransportModes    = []string{"Ground", "Air", "Rail", "Expedited"}
	ContainerTypes    = []string{"Cage", "Pallet", "Tote", "Bag"}
	DeliveryCompanies = []string{"Company A", "Company B", "Company C"}
	OSNRFlags         = []string{"Y", "N"}
	SourceSystems     = []string{"HHD", "SORTER", "WEB", "EDI"}
	PickupLocations   = []string{"Front Door", "Side Door", "Mailroom", "Reception", "Parcel Locker"}
	CountryCodes      = []string{"CA", "US"}
)
