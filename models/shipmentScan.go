package models

import (
	"reflect"
)

// ShipmentScan is one scan event of a tracked piece.
// The json and csv tags are the display names the front-end uses as column keys.
// Every field is a display string; nothing is validated.
type ShipmentScan struct {
	PiecePin                string `json:"Piece Pin,omitempty" csv:"Piece Pin"`
	ShipmentPin             string `json:"Shipment Pin,omitempty" csv:"Shipment Pin"`
	ScanDate                string `json:"Scan Date,omitempty" csv:"Scan Date"`
	ScanTime                string `json:"Scan Time,omitempty" csv:"Scan Time"`
	SystemUpdateDate        string `json:"System Update Date,omitempty" csv:"System Update Date"`
	TerminalName            string `json:"Terminal Name,omitempty" csv:"Terminal Name"`
	TerminalId              string `json:"Terminal Id,omitempty" csv:"Terminal Id"`
	Route                   string `json:"Route,omitempty" csv:"Route"`
	ScanCode                string `json:"Scan Code,omitempty" csv:"Scan Code"`
	EventReasonCode         string `json:"Event Reason Code,omitempty" csv:"Event Reason Code"`
	EventCodeDescEng        string `json:"Event Code Desc[Eng],omitempty" csv:"Event Code Desc[Eng]"`
	EventCodeDescFr         string `json:"Event Code Desc[Fr],omitempty" csv:"Event Code Desc[Fr]"`
	Comment                 string `json:"Comment,omitempty" csv:"Comment"`
	DeliverySignature       string `json:"Delivery Signature,omitempty" csv:"Delivery Signature"`
	ExpectedDeliveryDate    string `json:"Expected Delivery Date,omitempty" csv:"Expected Delivery Date"`
	ServiceDate             string `json:"Service Date,omitempty" csv:"Service Date"`
	OriginTerminalName      string `json:"Origin Terminal Name,omitempty" csv:"Origin Terminal Name"`
	OriginTerminalId        string `json:"Origin Terminal Id,omitempty" csv:"Origin Terminal Id"`
	OriginCity              string `json:"Origin City,omitempty" csv:"Origin City"`
	OriginProvince          string `json:"Origin Province,omitempty" csv:"Origin Province"`
	OriginFSA               string `json:"Origin FSA,omitempty" csv:"Origin FSA"`
	OriginPC                string `json:"Origin PC,omitempty" csv:"Origin PC"`
	OriginCountryCode       string `json:"Origin Country Code,omitempty" csv:"Origin Country Code"`
	DestinationTerminalId   string `json:"Destination Terminal Id,omitempty" csv:"Destination Terminal Id"`
	DestinationTerminalName string `json:"Destination Terminal Name,omitempty" csv:"Destination Terminal Name"`
	DestinationCity         string `json:"Destination City,omitempty" csv:"Destination City"`
	DestinationProvince     string `json:"Destination Province,omitempty" csv:"Destination Province"`
	DestinationFSA          string `json:"Destination FSA,omitempty" csv:"Destination FSA"`
	DestinationPC           string `json:"Destination PC,omitempty" csv:"Destination PC"`
	DestinationCountryCode  string `json:"Destination Country Code,omitempty" csv:"Destination Country Code"`
	AccountNumber           string `json:"Account Number,omitempty" csv:"Account Number"`
	ExpModeOfTrans          string `json:"Exp Mode of Trans,omitempty" csv:"Exp Mode of Trans"`
	ProductCode             string `json:"Product Code,omitempty" csv:"Product Code"`
	RevisedInitialTransit   string `json:"Revised Initial Transit Days,omitempty" csv:"Revised Initial Transit Days"`
	DeliveryCompanyName     string `json:"Delivery Company Name,omitempty" csv:"Delivery Company Name"`
	EventAddressLine1       string `json:"Event Address Line 1,omitempty" csv:"Event Address Line 1"`
	EventAddressLine2       string `json:"Event Address Line 2,omitempty" csv:"Event Address Line 2"`
	EventCity               string `json:"Event City,omitempty" csv:"Event City"`
	EventProvince           string `json:"Event Province,omitempty" csv:"Event Province"`
	EventCountry            string `json:"Event Country,omitempty" csv:"Event Country"`
	EventPostalCode         string `json:"Event Postal Code,omitempty" csv:"Event Postal Code"`
	DeliverySNRPin          string `json:"Delivery SNR Pin,omitempty" csv:"Delivery SNR Pin"`
	DeliveryOSNRFlag        string `json:"Delivery OSNR Flag,omitempty" csv:"Delivery OSNR Flag"`
	CrossReferencePin       string `json:"Cross Reference Pin,omitempty" csv:"Cross Reference Pin"`
	ContainerId             string `json:"Container Id,omitempty" csv:"Container Id"`
	ContainerType           string `json:"Container Type,omitempty" csv:"Container Type"`
	PickupDeliveryLocation  string `json:"Pickup Delivery Location,omitempty" csv:"Pickup Delivery Location"`
	ScanSourceSystemCode    string `json:"Scan Source System Code,omitempty" csv:"Scan Source System Code"`
	ScanSourceReferenceCode string `json:"Scan Source Reference Code,omitempty" csv:"Scan Source Reference Code"`
	SourceCode              string `json:"Source Code,omitempty" csv:"Source Code"`
}

// FieldNames is the canonical column order, used as the default export header.
var FieldNames []string

// column name -> struct field index
var fieldIndex map[string]int

func init() {
	t := reflect.TypeOf(ShipmentScan{})
	FieldNames = make([]string, 0, t.NumField())
	fieldIndex = make(map[string]int, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		name := t.Field(i).Tag.Get("csv")
		FieldNames = append(FieldNames, name)
		fieldIndex[name] = i
	}
}

// DefaultColumns returns a copy of FieldNames.
func DefaultColumns() []string {
	out := make([]string, len(FieldNames))
	copy(out, FieldNames)
	return out
}

// IsKnownField reports whether column is one of FieldNames.
// The match is exact; "piece pin" is not "Piece Pin".
func IsKnownField(column string) bool {
	_, ok := fieldIndex[column]
	return ok
}

// Value projects the record onto a display column.
func (s ShipmentScan) Value(column string) (string, bool) {
	i, ok := fieldIndex[column]
	if !ok {
		return "", false
	}
	return reflect.ValueOf(s).Field(i).String(), true
}

// Row projects the record onto columns; unknown columns become empty cells.
func (s ShipmentScan) Row(columns []string) []string {
	v := reflect.ValueOf(s)
	row := make([]string, len(columns))
	for i, col := range columns {
		if idx, ok := fieldIndex[col]; ok {
			row[i] = v.Field(idx).String()
		}
	}
	return row
}

// IsZero is true for the placeholder returned for unknown pins.
func (s ShipmentScan) IsZero() bool {
	return s == ShipmentScan{}
}
