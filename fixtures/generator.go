package fixtures

import (
	"fmt"
	"math/rand"
	"strconv"
	"sync"
	"time"

	"github.com/mmdatafocus/tracking_backend/models"
)

const (
	pinMin = 10000000000000
	pinMax = 99999999999999
)

var DefaultBaseDate = time.Date(2024, time.July, 23, 0, 0, 0, 0, time.UTC)

// Generator produces synthetic scan records from a seeded source.
// Two generators with the same seed and base date produce identical tables.
type Generator struct {
	mu       sync.Mutex
	rng      *rand.Rand
	baseDate time.Time
}

// NewGenerator returns a generator for seed. A zero baseDate uses DefaultBaseDate.
func NewGenerator(seed int64, baseDate time.Time) *Generator {
	if baseDate.IsZero() {
		baseDate = DefaultBaseDate
	}
	return &Generator{
		rng:      rand.New(rand.NewSource(seed)),
		baseDate: baseDate,
	}
}

// Generate builds count records keyed by a fresh 14-digit pin.
// Colliding pins overwrite the earlier record, so Len() may be below count.
// A negative count yields an empty table.
func (g *Generator) Generate(count int) *Table {
	if count < 0 {
		count = 0
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	t := newTable(count)
	for i := 0; i < count; i++ {
		pin := g.pin()
		t.put(pin, g.record(i, pin))
	}
	return t
}

func (g *Generator) pin() string {
	return strconv.FormatInt(pinMin+g.rng.Int63n(pinMax-pinMin+1), 10)
}

func (g *Generator) record(i int, pin string) models.ShipmentScan {
	scanDay := g.baseDate.AddDate(0, 0, g.rng.Intn(7))
	scanDate := scanDay.Format(time.DateOnly)
	transitDays := 1 + g.rng.Intn(7)

	terminal := pick(g.rng, models.Terminals)
	origin := pick(g.rng, models.Terminals)
	destination := pick(g.rng, models.Terminals)
	event := pick(g.rng, models.ScanEvents)

	return models.ShipmentScan{
		PiecePin:                pin,
		ShipmentPin:             g.pin(),
		ScanDate:                scanDate,
		ScanTime:                fmt.Sprintf("%02d:%02d", g.rng.Intn(24), g.rng.Intn(60)),
		SystemUpdateDate:        scanDate,
		TerminalName:            terminal.Name,
		TerminalId:              fmt.Sprintf("T%05d", i),
		Route:                   fmt.Sprintf("Route %d", i),
		ScanCode:                fmt.Sprintf("Scan%05d", i),
		EventReasonCode:         fmt.Sprintf("%s%05d", event.Code, i),
		EventCodeDescEng:        event.DescEn,
		EventCodeDescFr:         event.DescFr,
		Comment:                 fmt.Sprintf("Comment %05d", i),
		DeliverySignature:       fmt.Sprintf("Signature %05d", i),
		ExpectedDeliveryDate:    scanDay.AddDate(0, 0, transitDays).Format(time.DateOnly),
		ServiceDate:             scanDate,
		OriginTerminalName:      origin.Name,
		OriginTerminalId:        fmt.Sprintf("OT%05d", i),
		OriginCity:              origin.City,
		OriginProvince:          origin.Province,
		OriginFSA:               origin.FSA,
		OriginPC:                g.postalCode(origin.FSA),
		OriginCountryCode:       "CA",
		DestinationTerminalId:   fmt.Sprintf("DT%05d", i),
		DestinationTerminalName: destination.Name,
		DestinationCity:         destination.City,
		DestinationProvince:     destination.Province,
		DestinationFSA:          destination.FSA,
		DestinationPC:           g.postalCode(destination.FSA),
		DestinationCountryCode:  pick(g.rng, models.CountryCodes),
		AccountNumber:           fmt.Sprintf("Account%05d", i),
		ExpModeOfTrans:          pick(g.rng, models.TransportModes),
		ProductCode:             fmt.Sprintf("Product%05d", i),
		RevisedInitialTransit:   strconv.Itoa(transitDays),
		DeliveryCompanyName:     pick(g.rng, models.DeliveryCompanies),
		EventAddressLine1:       fmt.Sprintf("Address 1 %05d", i),
		EventAddressLine2:       fmt.Sprintf("Address 2 %05d", i),
		EventCity:               terminal.City,
		EventProvince:           terminal.Province,
		EventCountry:            "CA",
		EventPostalCode:         g.postalCode(terminal.FSA),
		DeliverySNRPin:          fmt.Sprintf("SNR%05d", i),
		DeliveryOSNRFlag:        pick(g.rng, models.OSNRFlags),
		CrossReferencePin:       fmt.Sprintf("CR%05d", i),
		ContainerId:             fmt.Sprintf("Container%05d", i),
		ContainerType:           pick(g.rng, models.ContainerTypes),
		PickupDeliveryLocation:  pick(g.rng, models.PickupLocations),
		ScanSourceSystemCode:    pick(g.rng, models.SourceSystems),
		ScanSourceReferenceCode: fmt.Sprintf("REF%05d", i),
		SourceCode:              fmt.Sprintf("SRC%02d", g.rng.Intn(100)),
	}
}

// postalCode appends a local delivery unit (digit letter digit) to fsa.
func (g *Generator) postalCode(fsa string) string {
	return fmt.Sprintf("%s %d%c%d", fsa, g.rng.Intn(10), 'A'+rune(g.rng.Intn(26)), g.rng.Intn(10))
}

func pick[T any](rng *rand.Rand, items []T) T {
	return items[rng.Intn(len(items))]
}
