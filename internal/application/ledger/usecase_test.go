package ledger_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/almacen-api/internal/application/ledger"
	"github.com/tu-usuario/almacen-api/internal/domain/entity"
)

type fakeExitLedger struct{ rows []*entity.ExitRecord }

func (l *fakeExitLedger) Append(rec *entity.ExitRecord) error {
	l.rows = append(l.rows, rec)
	return nil
}
func (l *fakeExitLedger) ListAll() ([]*entity.ExitRecord, error) { return l.rows, nil }

type fakeEntryLedger struct{ rows []*entity.EntryRecord }

func (l *fakeEntryLedger) Append(rec *entity.EntryRecord) error {
	l.rows = append(l.rows, rec)
	return nil
}
func (l *fakeEntryLedger) ListAll() ([]*entity.EntryRecord, error) { return l.rows, nil }

func day(s string) time.Time {
	t, err := time.Parse(ledger.DateLayout, s)
	if err != nil {
		panic(err)
	}
	return t
}

func exitOn(ts time.Time, requester string) *entity.ExitRecord {
	return &entity.ExitRecord{
		ID: requester, Timestamp: ts, ItemCode: "X1", ItemName: "Guantes",
		Category: "EPP", Quantity: 1, Requester: requester,
	}
}

func newReportUC(exits ...*entity.ExitRecord) *ledger.ReportUseCase {
	return ledger.NewReportUseCase(&fakeExitLedger{rows: exits}, &fakeEntryLedger{}, nil)
}

func TestExits_RangoInclusivoEnAmbosExtremos(t *testing.T) {
	uc := newReportUC(
		exitOn(day("2026-03-01"), "antes"),
		exitOn(day("2026-03-02"), "inicio"),
		exitOn(day("2026-03-05"), "medio"),
		exitOn(day("2026-03-08"), "fin"),
		exitOn(day("2026-03-09"), "despues"),
	)

	resp, err := uc.Exits(day("2026-03-02"), day("2026-03-08"))
	require.NoError(t, err)

	require.Equal(t, 3, resp.Total)
	assert.Equal(t, "inicio", resp.Records[0].Requester, "el día 'from' es inclusivo")
	assert.Equal(t, "fin", resp.Records[2].Requester, "el día 'to' es inclusivo")
	assert.Equal(t, "2026-03-02", resp.From)
	assert.Equal(t, "2026-03-08", resp.To)
}

func TestExits_UltimaHoraDelDiaFinalIncluida(t *testing.T) {
	// Un registro a las 23:59 del día "to" sigue dentro del rango: la
	// comparación es por fecha calendario, no por instante.
	casi := time.Date(2026, 3, 8, 23, 59, 0, 0, time.Local)
	uc := newReportUC(exitOn(casi, "tarde"))

	resp, err := uc.Exits(day("2026-03-01"), day("2026-03-08"))
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Total)
}

func TestExits_LimitesAbiertos(t *testing.T) {
	uc := newReportUC(
		exitOn(day("2026-01-15"), "enero"),
		exitOn(day("2026-06-15"), "junio"),
	)

	// Sin "from": todo hasta "to".
	resp, err := uc.Exits(time.Time{}, day("2026-03-01"))
	require.NoError(t, err)
	require.Equal(t, 1, resp.Total)
	assert.Equal(t, "enero", resp.Records[0].Requester)
	assert.Empty(t, resp.From)

	// Sin "to": todo desde "from".
	resp, err = uc.Exits(day("2026-03-01"), time.Time{})
	require.NoError(t, err)
	require.Equal(t, 1, resp.Total)
	assert.Equal(t, "junio", resp.Records[0].Requester)

	// Sin límites: todo el libro.
	resp, err = uc.Exits(time.Time{}, time.Time{})
	require.NoError(t, err)
	assert.Equal(t, 2, resp.Total)
}

func TestExits_ConservaOrdenDelLibro(t *testing.T) {
	// Las filas entran en orden cronológico de inserción; el filtro no reordena.
	uc := newReportUC(
		exitOn(day("2026-03-03"), "primero"),
		exitOn(day("2026-03-01"), "segundo"),
		exitOn(day("2026-03-02"), "tercero"),
	)

	resp, err := uc.Exits(time.Time{}, time.Time{})
	require.NoError(t, err)
	require.Equal(t, 3, resp.Total)
	assert.Equal(t, "primero", resp.Records[0].Requester)
	assert.Equal(t, "segundo", resp.Records[1].Requester)
	assert.Equal(t, "tercero", resp.Records[2].Requester)
}

func TestEntries_FiltraPorFecha(t *testing.T) {
	entries := &fakeEntryLedger{rows: []*entity.EntryRecord{
		{ID: "1", Timestamp: day("2026-03-01"), ItemCode: "X1", Quantity: 5, Kind: entity.EntryKindManual},
		{ID: "2", Timestamp: day("2026-04-01"), ItemCode: "X1", Quantity: 3, Kind: entity.EntryKindInvoice, Document: "FAC-1"},
	}}
	uc := ledger.NewReportUseCase(&fakeExitLedger{}, entries, nil)

	resp, err := uc.Entries(day("2026-03-15"), day("2026-04-15"))
	require.NoError(t, err)
	require.Equal(t, 1, resp.Total)
	assert.Equal(t, "FAC-1", resp.Records[0].Document)
}

func TestExits_LibroVacio(t *testing.T) {
	uc := newReportUC()

	resp, err := uc.Exits(day("2026-03-01"), day("2026-03-31"))
	require.NoError(t, err)
	assert.Equal(t, 0, resp.Total)
	assert.NotNil(t, resp.Records, "la respuesta debe traer lista vacía, no null")
}
