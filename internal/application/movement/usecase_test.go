package movement_test

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/almacen-api/internal/application/dto"
	"github.com/tu-usuario/almacen-api/internal/application/movement"
	"github.com/tu-usuario/almacen-api/internal/domain"
	"github.com/tu-usuario/almacen-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeItemRepo struct {
	items map[string]*entity.Item
}

func newFakeItemRepo(items ...*entity.Item) *fakeItemRepo {
	r := &fakeItemRepo{items: make(map[string]*entity.Item)}
	for _, it := range items {
		cp := *it
		r.items[it.Code] = &cp
	}
	return r
}

func (r *fakeItemRepo) GetByCode(code string) (*entity.Item, error) {
	it, ok := r.items[code]
	if !ok {
		return nil, nil
	}
	cp := *it
	return &cp, nil
}

func (r *fakeItemRepo) Create(item *entity.Item) error {
	if _, ok := r.items[item.Code]; ok {
		return domain.ErrDuplicateCode
	}
	cp := *item
	r.items[item.Code] = &cp
	return nil
}

func (r *fakeItemRepo) Update(item *entity.Item) error {
	if _, ok := r.items[item.Code]; !ok {
		return domain.ErrNotFound
	}
	cp := *item
	r.items[item.Code] = &cp
	return nil
}

func (r *fakeItemRepo) Delete(code string) error {
	if _, ok := r.items[code]; !ok {
		return domain.ErrNotFound
	}
	delete(r.items, code)
	return nil
}

func (r *fakeItemRepo) ListAll() ([]*entity.Item, error) {
	out := make([]*entity.Item, 0, len(r.items))
	for _, it := range r.items {
		cp := *it
		out = append(out, &cp)
	}
	return out, nil
}

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

type fakeAuditLog struct{ rows []*entity.AuditEntry }

func (l *fakeAuditLog) Append(rec *entity.AuditEntry) error {
	l.rows = append(l.rows, rec)
	return nil
}
func (l *fakeAuditLog) ListAll() ([]*entity.AuditEntry, error) { return l.rows, nil }

type fixture struct {
	svc     *movement.MovementService
	items   *fakeItemRepo
	exits   *fakeExitLedger
	entries *fakeEntryLedger
	audit   *fakeAuditLog
}

func newFixture(items ...*entity.Item) *fixture {
	f := &fixture{
		items:   newFakeItemRepo(items...),
		exits:   &fakeExitLedger{},
		entries: &fakeEntryLedger{},
		audit:   &fakeAuditLog{},
	}
	var mu sync.Mutex
	f.svc = movement.NewMovementService(&mu, f.items, f.exits, f.entries, f.audit)
	return f
}

func guantes(qty int) *entity.Item {
	return &entity.Item{Code: "X1", Name: "Guantes", Category: "EPP", Quantity: qty, MinLevel: 5, MaxLevel: 50}
}

// ──────────────────────────────────────────────────────────────────────────────
// Salidas
// ──────────────────────────────────────────────────────────────────────────────

func TestRegisterExit_DescuentaStock(t *testing.T) {
	f := newFixture(guantes(10))

	resp, err := f.svc.RegisterExit("ana", dto.RegisterExitRequest{
		Code: "X1", Quantity: 3, Requester: "mantenimiento",
	})
	require.NoError(t, err)
	require.NotNil(t, resp)

	assert.Equal(t, "X1", resp.ItemCode)
	assert.Equal(t, 3, resp.Quantity)
	assert.NotEmpty(t, resp.ID)

	item, err := f.items.GetByCode("X1")
	require.NoError(t, err)
	assert.Equal(t, 7, item.Quantity, "debe quedar 10 - 3 = 7")
	assert.Equal(t, entity.StockStatusOK, item.StockStatus())
}

func TestRegisterExit_StockInsuficiente_NoMutaNada(t *testing.T) {
	f := newFixture(guantes(5))

	_, err := f.svc.RegisterExit("ana", dto.RegisterExitRequest{
		Code: "X1", Quantity: 6, Requester: "mantenimiento",
	})
	require.Error(t, err)

	var stockErr *domain.InsufficientStockError
	require.ErrorAs(t, err, &stockErr, "debe ser InsufficientStockError")
	assert.Equal(t, 6, stockErr.Requested)
	assert.Equal(t, 5, stockErr.Available, "el error debe informar lo disponible")
	assert.True(t, errors.Is(err, domain.ErrInsufficientStock))

	item, _ := f.items.GetByCode("X1")
	assert.Equal(t, 5, item.Quantity, "el stock no debe cambiar")
	assert.Empty(t, f.exits.rows, "no debe agregarse fila al libro de salidas")
	assert.Empty(t, f.audit.rows, "no debe agregarse fila de auditoría")
}

func TestRegisterExit_HastaCero_QuedaAgotado(t *testing.T) {
	f := newFixture(guantes(7))

	_, err := f.svc.RegisterExit("ana", dto.RegisterExitRequest{
		Code: "X1", Quantity: 7, Requester: "obras",
	})
	require.NoError(t, err)

	item, _ := f.items.GetByCode("X1")
	assert.Equal(t, 0, item.Quantity)
	assert.Equal(t, entity.StockStatusOut, item.StockStatus(), "con cero existencias el estado es agotado")
}

func TestRegisterExit_ArticuloInexistente(t *testing.T) {
	f := newFixture()

	_, err := f.svc.RegisterExit("ana", dto.RegisterExitRequest{
		Code: "NOPE", Quantity: 1, Requester: "obras",
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRegisterExit_ValidacionDeEntrada(t *testing.T) {
	f := newFixture(guantes(10))

	casos := []dto.RegisterExitRequest{
		{Code: "", Quantity: 1, Requester: "obras"},
		{Code: "X1", Quantity: 0, Requester: "obras"},
		{Code: "X1", Quantity: -2, Requester: "obras"},
		{Code: "X1", Quantity: 1, Requester: ""},
	}
	for _, in := range casos {
		_, err := f.svc.RegisterExit("ana", in)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	}
}

func TestRegisterExit_CopiaNombreYCategoria(t *testing.T) {
	f := newFixture(guantes(10))

	resp, err := f.svc.RegisterExit("ana", dto.RegisterExitRequest{
		Code: "X1", Quantity: 2, Requester: "obras",
	})
	require.NoError(t, err)

	// La fila del libro conserva nombre y categoría del momento de la salida,
	// aunque luego el artículo se renombre o se elimine.
	assert.Equal(t, "Guantes", resp.ItemName)
	assert.Equal(t, "EPP", resp.Category)

	require.Len(t, f.exits.rows, 1)
	assert.Equal(t, "Guantes", f.exits.rows[0].ItemName)
}

func TestRegisterExit_Auditoria(t *testing.T) {
	f := newFixture(guantes(10))

	_, err := f.svc.RegisterExit("ana", dto.RegisterExitRequest{
		Code: "X1", Quantity: 2, Requester: "obras",
	})
	require.NoError(t, err)

	require.Len(t, f.audit.rows, 1)
	assert.Equal(t, "ana", f.audit.rows[0].Actor)
	assert.Equal(t, entity.ActionExit, f.audit.rows[0].Action)
	assert.Contains(t, f.audit.rows[0].Details, "code=X1")
}

// ──────────────────────────────────────────────────────────────────────────────
// Entradas
// ──────────────────────────────────────────────────────────────────────────────

func TestRegisterEntry_SumaStock_SinTopeMaximo(t *testing.T) {
	f := newFixture(guantes(45))

	// MaxLevel es 50; una entrada que lo supera igual se acepta completa.
	resp, err := f.svc.RegisterEntry("ana", dto.RegisterEntryRequest{
		Code: "X1", Quantity: 20, Kind: entity.EntryKindManual,
	})
	require.NoError(t, err)
	assert.Equal(t, 20, resp.Quantity)

	item, _ := f.items.GetByCode("X1")
	assert.Equal(t, 65, item.Quantity, "la entrada no se recorta contra MaxLevel")
}

func TestRegisterEntry_FacturaRequiereDocumento(t *testing.T) {
	f := newFixture(guantes(10))

	_, err := f.svc.RegisterEntry("ana", dto.RegisterEntryRequest{
		Code: "X1", Quantity: 5, Kind: entity.EntryKindInvoice,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "entrada por factura sin documento debe rechazarse")

	resp, err := f.svc.RegisterEntry("ana", dto.RegisterEntryRequest{
		Code: "X1", Quantity: 5, Kind: entity.EntryKindInvoice, Document: "FAC-001", Supplier: "ACME",
	})
	require.NoError(t, err)
	assert.Equal(t, "FAC-001", resp.Document)
	assert.Equal(t, "ACME", resp.Supplier)
}

func TestRegisterEntry_TipoInvalido(t *testing.T) {
	f := newFixture(guantes(10))

	_, err := f.svc.RegisterEntry("ana", dto.RegisterEntryRequest{
		Code: "X1", Quantity: 5, Kind: "donacion",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRegisterEntry_ArticuloInexistente(t *testing.T) {
	f := newFixture()

	_, err := f.svc.RegisterEntry("ana", dto.RegisterEntryRequest{
		Code: "NOPE", Quantity: 5, Kind: entity.EntryKindManual,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Propiedades combinadas
// ──────────────────────────────────────────────────────────────────────────────

func TestSalidaYEntrada_RestauranCantidad(t *testing.T) {
	f := newFixture(guantes(10))

	_, err := f.svc.RegisterExit("ana", dto.RegisterExitRequest{Code: "X1", Quantity: 4, Requester: "obras"})
	require.NoError(t, err)
	_, err = f.svc.RegisterEntry("ana", dto.RegisterEntryRequest{Code: "X1", Quantity: 4, Kind: entity.EntryKindManual})
	require.NoError(t, err)

	item, _ := f.items.GetByCode("X1")
	assert.Equal(t, 10, item.Quantity, "salida + entrada por la misma cantidad restaura el stock")
}

func TestLibros_ConservanOrdenDeInsercion(t *testing.T) {
	f := newFixture(guantes(100))

	pedidos := []string{"obras", "mantenimiento", "limpieza"}
	for _, p := range pedidos {
		_, err := f.svc.RegisterExit("ana", dto.RegisterExitRequest{Code: "X1", Quantity: 1, Requester: p})
		require.NoError(t, err)
	}

	rows, err := f.exits.ListAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)
	for i, p := range pedidos {
		assert.Equal(t, p, rows[i].Requester, "el libro conserva el orden de inserción")
	}
}
