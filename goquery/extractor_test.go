package goquery_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/fwojciec/firmlist"
	"github.com/fwojciec/firmlist/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fullListing = `<div class="list-element">
	<div class="list-element__wrap">
		<a class="list-element__title" href="/id/1234567">
			ООО "РОМАШКА"
		</a>
		<div class="list-element__address">
			г. Москва, ул. Тверская, д. 1
		</div>
		<div class="list-element__row-info">
			<span>ИНН:  7701234567</span>
			<span>ОГРН: 1027700000000</span>
			<span>Дата регистрации: 12.03.2004</span>
		</div>
		<div class="list-element__info-box">
			<div class="list-element__info-box-item">
				<span>Выручка:</span>
				<div>12&nbsp;000&nbsp;000&nbsp;руб.</div>
			</div>
			<div class="list-element__info-box-item">
				<span>Прибыль:</span>
				<div>1&nbsp;000 руб.</div>
			</div>
		</div>
		<div class="list-element__activity">
			<span class="list-element__text">Разработка компьютерного программного обеспечения (62.01)</span>
		</div>
	</div>
</div>`

func page(body string) string {
	return "<!DOCTYPE html>\n<html>\n<body>\n<div class=\"search-result\">\n" + body + "\n</div>\n</body>\n</html>"
}

func TestExtractor_ImplementsInterface(t *testing.T) {
	t.Parallel()

	var _ firmlist.Extractor = goquery.NewExtractor()
}

func TestExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("extracts all fields from a complete listing item", func(t *testing.T) {
		t.Parallel()

		e := goquery.NewExtractor()

		companies, err := e.Extract(page(fullListing))

		require.NoError(t, err)
		require.Len(t, companies, 1)
		c := companies[0]
		require.NotNil(t, c.Name)
		assert.Equal(t, `ООО "РОМАШКА"`, *c.Name)
		require.NotNil(t, c.INN)
		assert.Equal(t, "7701234567", *c.INN)
		assert.Equal(t, "12.03.2004", c.RegDate)
		assert.Equal(t, "12 000 000 руб.", c.Revenue)
		require.NotNil(t, c.Region)
		assert.Equal(t, "г. Москва, ул. Тверская, д. 1", *c.Region)
		require.NotNil(t, c.OKVEDMain)
		assert.Equal(t, "Разработка компьютерного программного обеспечения (62.01)", *c.OKVEDMain)
		assert.Equal(t, "https://www.rusprofile.ru/", c.Source)
		assert.Equal(t, "2025", c.RevenueYear)
	})

	t.Run("uses configured constants", func(t *testing.T) {
		t.Parallel()

		e := goquery.NewExtractor(
			goquery.WithSourceURL("https://example.com/"),
			goquery.WithRevenueYear("2024"),
		)

		companies, err := e.Extract(page(fullListing))

		require.NoError(t, err)
		require.Len(t, companies, 1)
		assert.Equal(t, "https://example.com/", companies[0].Source)
		assert.Equal(t, "2024", companies[0].RevenueYear)
	})

	t.Run("returns empty slice when page has no listing items", func(t *testing.T) {
		t.Parallel()

		e := goquery.NewExtractor()

		companies, err := e.Extract(page(`<div class="list-element__title">not a listing</div>`))

		require.NoError(t, err)
		assert.Empty(t, companies)
	})

	t.Run("returns empty slice for empty input", func(t *testing.T) {
		t.Parallel()

		companies, err := goquery.NewExtractor().Extract("")

		require.NoError(t, err)
		assert.Empty(t, companies)
	})

	t.Run("keeps document order", func(t *testing.T) {
		t.Parallel()

		var b strings.Builder
		for i := range 5 {
			fmt.Fprintf(&b, `<div class="list-element"><a class="list-element__title">Company %d</a></div>`, i)
		}

		companies, err := goquery.NewExtractor().Extract(page(b.String()))

		require.NoError(t, err)
		require.Len(t, companies, 5)
		for i, c := range companies {
			require.NotNil(t, c.Name)
			assert.Equal(t, fmt.Sprintf("Company %d", i), *c.Name)
		}
	})

	t.Run("matches listing class among other classes", func(t *testing.T) {
		t.Parallel()

		html := page(`<div class="company-item list-element highlighted"><a class="list-element__title">A</a></div>`)

		companies, err := goquery.NewExtractor().Extract(html)

		require.NoError(t, err)
		require.Len(t, companies, 1)
		assert.Equal(t, "A", *companies[0].Name)
	})

	t.Run("ignores listing class on non-div elements", func(t *testing.T) {
		t.Parallel()

		html := page(`<section class="list-element"><a class="list-element__title">A</a></section>`)

		companies, err := goquery.NewExtractor().Extract(html)

		require.NoError(t, err)
		assert.Empty(t, companies)
	})

	t.Run("tolerates malformed markup", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><div class="list-element"><a class="list-element__title">Broken<div class="list-element__row-info"><span>ИНН: 123`

		companies, err := goquery.NewExtractor().Extract(html)

		require.NoError(t, err)
		require.Len(t, companies, 1)
		require.NotNil(t, companies[0].INN)
		assert.Equal(t, "123", *companies[0].INN)
	})
}

func TestExtractor_AbsentFields(t *testing.T) {
	t.Parallel()

	t.Run("empty listing item omits optional fields and empties defaults", func(t *testing.T) {
		t.Parallel()

		companies, err := goquery.NewExtractor().Extract(page(`<div class="list-element"></div>`))

		require.NoError(t, err)
		require.Len(t, companies, 1)
		c := companies[0]
		assert.Nil(t, c.Name)
		assert.Nil(t, c.INN)
		assert.Nil(t, c.Region)
		assert.Nil(t, c.OKVEDMain)
		assert.Equal(t, "", c.RegDate)
		assert.Equal(t, "", c.Revenue)
		assert.Equal(t, "https://www.rusprofile.ru/", c.Source)
		assert.Equal(t, "2025", c.RevenueYear)
	})

	t.Run("missing title leaves name absent not empty", func(t *testing.T) {
		t.Parallel()

		html := page(`<div class="list-element">
			<span class="list-element__title">Not an anchor</span>
			<div class="list-element__address">г. Казань</div>
		</div>`)

		companies, err := goquery.NewExtractor().Extract(html)

		require.NoError(t, err)
		require.Len(t, companies, 1)
		assert.Nil(t, companies[0].Name)
		require.NotNil(t, companies[0].Region)
		assert.Equal(t, "г. Казань", *companies[0].Region)
	})

	t.Run("row-info without labels leaves inn absent and reg date empty", func(t *testing.T) {
		t.Parallel()

		html := page(`<div class="list-element">
			<div class="list-element__row-info"><span>ОГРН: 1027700000000</span></div>
		</div>`)

		companies, err := goquery.NewExtractor().Extract(html)

		require.NoError(t, err)
		require.Len(t, companies, 1)
		assert.Nil(t, companies[0].INN)
		assert.Equal(t, "", companies[0].RegDate)
	})

	t.Run("labels outside row-info are ignored", func(t *testing.T) {
		t.Parallel()

		html := page(`<div class="list-element">
			<span>ИНН: 7701234567</span>
			<span>Дата регистрации: 12.03.2004</span>
		</div>`)

		companies, err := goquery.NewExtractor().Extract(html)

		require.NoError(t, err)
		require.Len(t, companies, 1)
		assert.Nil(t, companies[0].INN)
		assert.Equal(t, "", companies[0].RegDate)
	})

	t.Run("one missing field does not affect the others", func(t *testing.T) {
		t.Parallel()

		html := page(`<div class="list-element">
			<a class="list-element__title">ООО "ЛУЧ"</a>
			<div class="list-element__row-info"><span>ИНН: 5401000000</span></div>
			<span class="list-element__text">Торговля (46.90)</span>
		</div>`)

		companies, err := goquery.NewExtractor().Extract(html)

		require.NoError(t, err)
		require.Len(t, companies, 1)
		c := companies[0]
		assert.Equal(t, `ООО "ЛУЧ"`, *c.Name)
		assert.Equal(t, "5401000000", *c.INN)
		assert.Equal(t, "Торговля (46.90)", *c.OKVEDMain)
		assert.Nil(t, c.Region)
		assert.Equal(t, "", c.RegDate)
		assert.Equal(t, "", c.Revenue)
	})
}

func TestExtractor_Labels(t *testing.T) {
	t.Parallel()

	rowInfo := func(spans string) string {
		return page(`<div class="list-element"><div class="list-element__row-info">` + spans + `</div></div>`)
	}

	tests := []struct {
		name        string
		html        string
		wantINN     *string
		wantRegDate string
	}{
		{
			name:    "trims whitespace after the colon",
			html:    rowInfo(`<span>ИНН:    1234567890   </span>`),
			wantINN: strPtr("1234567890"),
		},
		{
			name:        "keeps colons after the first one",
			html:        rowInfo(`<span>Дата регистрации: 12:30 01.02.2003</span>`),
			wantRegDate: "12:30 01.02.2003",
		},
		{
			name:    "matches label anywhere in the text",
			html:    rowInfo(`<span>Код ИНН: 1234567890</span>`),
			wantINN: strPtr("1234567890"),
		},
		{
			name:    "value after first colon even when label is not first",
			html:    rowInfo(`<span>Код: ИНН: 1234567890</span>`),
			wantINN: strPtr("ИНН: 1234567890"),
		},
		{
			name: "label match is case sensitive",
			html: rowInfo(`<span>инн: 1234567890</span>`),
		},
		{
			name: "label without colon does not match",
			html: rowInfo(`<span>ИНН 1234567890</span>`),
		},
		{
			name: "label with mixed content is not a leaf",
			html: rowInfo(`<span>ИНН: <b>1234567890</b> (основной)</span>`),
		},
		{
			name:    "label wrapped in a single element is a leaf",
			html:    rowInfo(`<span><b>ИНН: 1234567890</b></span>`),
			wantINN: strPtr("1234567890"),
		},
		{
			name:    "empty value after the label",
			html:    rowInfo(`<span>ИНН:</span>`),
			wantINN: strPtr(""),
		},
		{
			name:        "first matching span wins",
			html:        rowInfo(`<span>ИНН: 111</span><span>ИНН: 222</span><span>Дата регистрации: 01.01.2001</span><span>Дата регистрации: 02.02.2002</span>`),
			wantINN:     strPtr("111"),
			wantRegDate: "01.01.2001",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			companies, err := goquery.NewExtractor().Extract(tt.html)

			require.NoError(t, err)
			require.Len(t, companies, 1)
			assert.Equal(t, tt.wantINN, companies[0].INN)
			assert.Equal(t, tt.wantRegDate, companies[0].RegDate)
		})
	}
}

func TestExtractor_Revenue(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		html string
		want string
	}{
		{
			name: "normalizes non-breaking spaces",
			html: "<div class=\"list-element__info-box\"><div class=\"list-element__info-box-item\"><span>Выручка:</span><div>12\u00a0000\u00a0000\u00a0руб.</div></div></div>",
			want: "12 000 000 руб.",
		},
		{
			name: "skips text between label and value",
			html: `<div class="list-element__info-box"><div class="list-element__info-box-item"><span>Выручка:</span>
				<div>  5 млн руб.  </div></div></div>`,
			want: "5 млн руб.",
		},
		{
			name: "label without next sibling yields empty revenue",
			html: `<div class="list-element__info-box"><div class="list-element__info-box-item"><span>Выручка:</span></div></div>`,
			want: "",
		},
		{
			name: "label only followed by text yields empty revenue",
			html: `<div class="list-element__info-box"><div class="list-element__info-box-item"><span>Выручка:</span> 5 млн руб.</div></div>`,
			want: "",
		},
		{
			name: "only the first info-box item is searched",
			html: `<div class="list-element__info-box">
				<div class="list-element__info-box-item"><span>Прибыль:</span><div>1 руб.</div></div>
				<div class="list-element__info-box-item"><span>Выручка:</span><div>2 руб.</div></div>
			</div>`,
			want: "",
		},
		{
			name: "missing info-box item yields empty revenue",
			html: `<div class="list-element__info-box"><span>Выручка:</span><div>2 руб.</div></div>`,
			want: "",
		},
		{
			name: "missing info-box yields empty revenue",
			html: `<div class="list-element__info-box-item"><span>Выручка:</span><div>2 руб.</div></div>`,
			want: "",
		},
		{
			name: "concatenates nested value text",
			html: `<div class="list-element__info-box"><div class="list-element__info-box-item"><span>Выручка:</span><div><b>7,5</b> <i>млрд руб.</i></div></div></div>`,
			want: "7,5млрд руб.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			companies, err := goquery.NewExtractor().Extract(page(`<div class="list-element">` + tt.html + `</div>`))

			require.NoError(t, err)
			require.Len(t, companies, 1)
			assert.Equal(t, tt.want, companies[0].Revenue)
		})
	}
}

func TestExtractor_OKVED(t *testing.T) {
	t.Parallel()

	t.Run("takes the first text span anywhere in the item", func(t *testing.T) {
		t.Parallel()

		html := page(`<div class="list-element">
			<div class="list-element__row-info"><span class="list-element__text">Первый (01.11)</span></div>
			<div class="list-element__activity"><span class="list-element__text">Второй (02.22)</span></div>
		</div>`)

		companies, err := goquery.NewExtractor().Extract(html)

		require.NoError(t, err)
		require.Len(t, companies, 1)
		require.NotNil(t, companies[0].OKVEDMain)
		assert.Equal(t, "Первый (01.11)", *companies[0].OKVEDMain)
	})

	t.Run("does not read text spans of the next item", func(t *testing.T) {
		t.Parallel()

		html := page(`<div class="list-element"></div>
			<div class="list-element"><span class="list-element__text">Второй (02.22)</span></div>`)

		companies, err := goquery.NewExtractor().Extract(html)

		require.NoError(t, err)
		require.Len(t, companies, 2)
		assert.Nil(t, companies[0].OKVEDMain)
		require.NotNil(t, companies[1].OKVEDMain)
		assert.Equal(t, "Второй (02.22)", *companies[1].OKVEDMain)
	})
}

func TestExtractor_StrippedText(t *testing.T) {
	t.Parallel()

	html := page(`<div class="list-element">
		<a class="list-element__title">
			ООО
			<span>"СЕВЕР"</span>
		</a>
		<div class="list-element__address">` + "\u00a0г. Мурманск\u00a0" + `</div>
	</div>`)

	companies, err := goquery.NewExtractor().Extract(html)

	require.NoError(t, err)
	require.Len(t, companies, 1)
	assert.Equal(t, `ООО"СЕВЕР"`, *companies[0].Name)
	assert.Equal(t, "г. Мурманск", *companies[0].Region)
}

func strPtr(s string) *string {
	return &s
}
