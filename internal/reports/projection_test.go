package reports

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sharath018/event-registration-backend/internal/lifecycle"
	"github.com/sharath018/event-registration-backend/internal/registration"
)

func sampleRegistrations() []registration.Registration {
	day := time.Date(2026, 1, 5, 10, 0, 0, 0, time.UTC)
	return []registration.Registration{
		{FullName: "Ana", CPF: "11111111111", Phone: "11911111111", EventName: "Retiro", Date: day,
			Status: lifecycle.StatusConfirmed, PaymentStatus: lifecycle.PaymentPaid, Amount: 150},
		{FullName: "Bruno", CPF: "22222222222", Phone: "11922222222", EventName: "Retiro", Date: day.Add(time.Hour),
			Status: lifecycle.StatusPending, PaymentStatus: lifecycle.PaymentUnpaid, Amount: 150},
		{FullName: "Carla", CPF: "33333333333", Phone: "11933333333", EventName: "Encontro", Date: day.Add(2 * time.Hour),
			Status: lifecycle.StatusConfirmed, PaymentStatus: lifecycle.PaymentPaid, Amount: 80.5},
		{FullName: "Davi", CPF: "44444444444", Phone: "11944444444", EventName: "Encontro", Date: day.Add(3 * time.Hour),
			Status: lifecycle.StatusCanceled, PaymentStatus: lifecycle.PaymentUnpaid, Amount: 80.5},
	}
}

func TestHeaders(t *testing.T) {
	tests := []struct {
		name string
		opts Options
		want []string
	}{
		{"all groups", DefaultOptions(), []string{"Nome", "CPF", "Telefone", "Evento", "Data", "Status", "Status Pagamento", "Valor"}},
		{"payment only", Options{IncludePaymentInfo: true}, []string{"Status", "Status Pagamento", "Valor"}},
		{"personal and event", Options{IncludePersonalInfo: true, IncludeEventDetails: true}, []string{"Nome", "CPF", "Telefone", "Evento", "Data"}},
		{"none", Options{}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Headers(tt.opts))
		})
	}
}

func TestProjectKeepsOrderAndCount(t *testing.T) {
	regs := sampleRegistrations()
	rows := Project(regs, DefaultOptions())
	require.Len(t, rows, len(regs))
	for i, row := range rows {
		name, _ := row.Get(ColName)
		assert.Equal(t, regs[i].FullName, name)
		assert.Equal(t, Headers(DefaultOptions()), row.Columns())
	}
}

func TestProjectOnlyConfirmed(t *testing.T) {
	opts := DefaultOptions()
	opts.OnlyConfirmed = true

	rows := Project(sampleRegistrations(), opts)
	require.Len(t, rows, 2)
	for _, row := range rows {
		status, ok := row.Get(ColStatus)
		require.True(t, ok)
		assert.Equal(t, "confirmado", status)
	}
	first, _ := rows[0].Get(ColName)
	second, _ := rows[1].Get(ColName)
	assert.Equal(t, "Ana", first)
	assert.Equal(t, "Carla", second)
}

func TestProjectPaymentOnlyKeepsRawAmount(t *testing.T) {
	rows := Project(sampleRegistrations(), Options{IncludePaymentInfo: true})
	require.Len(t, rows, 4)

	assert.Equal(t, []string{"Status", "Status Pagamento", "Valor"}, rows[2].Columns())
	amount, ok := rows[2].Get(ColAmount)
	require.True(t, ok)
	assert.Equal(t, 80.5, amount)

	_, ok = rows[2].Get(ColName)
	assert.False(t, ok)
}

func TestProjectNoGroupsYieldsEmptyRows(t *testing.T) {
	rows := Project(sampleRegistrations(), Options{})
	require.Len(t, rows, 4)
	for _, row := range rows {
		assert.Zero(t, row.Len())
	}

	rows = Project(sampleRegistrations(), Options{OnlyConfirmed: true})
	assert.Len(t, rows, 2)
}

func TestProjectEmptyInput(t *testing.T) {
	assert.Empty(t, Project(nil, DefaultOptions()))
}

func TestProjectEventDetailsKeepsRawDate(t *testing.T) {
	regs := sampleRegistrations()
	rows := Project(regs, Options{IncludeEventDetails: true})
	date, ok := rows[0].Get(ColDate)
	require.True(t, ok)
	assert.Equal(t, regs[0].Date, date)
}

func TestRowJSONKeepsColumnOrder(t *testing.T) {
	rows := Project(sampleRegistrations()[:1], Options{IncludePersonalInfo: true, IncludePaymentInfo: true})
	out, err := json.Marshal(rows[0])
	require.NoError(t, err)
	assert.Equal(t,
		`{"Nome":"Ana","CPF":"11111111111","Telefone":"11911111111","Status":"confirmado","Status Pagamento":"pago","Valor":150}`,
		string(out))

	out, err = json.Marshal(Row{})
	require.NoError(t, err)
	assert.Equal(t, `{}`, string(out))
}
