// Package xmlexport serializa el relatorio financiero a XML con un digest SHA-256
// calculado sobre la forma canónica (C14N 1.0) del documento sin el elemento Digest.
package xmlexport

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/base64"
	"encoding/xml"
	"fmt"
	"strconv"
	"time"

	"github.com/beevik/etree"
	"github.com/ucarion/c14n"

	"github.com/jhoicas/luviel-fluxo/internal/application/analytics"
	"github.com/jhoicas/luviel-fluxo/internal/application/dto"
)

var _ analytics.ReportXMLExporter = (*Exporter)(nil)

const (
	// Namespace del relatorio.
	Namespace = "urn:luviel:fluxo:relatorio:1"
	// AlgSHA256 identificador del algoritmo de digest.
	AlgSHA256 = "http://www.w3.org/2001/04/xmlenc#sha256"
	// AlgC14N identificador de la canonicalización usada.
	AlgC14N = "http://www.w3.org/TR/2001/REC-xml-c14n-20010315"

	digestTag = "Digest"
)

// Exporter implementa analytics.ReportXMLExporter con etree + c14n.
type Exporter struct{}

// NewExporter construye el exportador.
func NewExporter() *Exporter { return &Exporter{} }

// ExportReportXML construye el documento, calcula el digest y lo agrega como último hijo de la raíz.
func (e *Exporter) ExportReportXML(_ context.Context, r *dto.ReportDTO) ([]byte, error) {
	root := buildRoot(r)

	digest, err := digestOf(root)
	if err != nil {
		return nil, err
	}
	d := root.CreateElement(digestTag)
	d.CreateAttr("algoritmo", AlgSHA256)
	d.CreateAttr("canonicalizacao", AlgC14N)
	d.SetText(digest)

	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	doc.SetRoot(root)
	var out bytes.Buffer
	if _, err := doc.WriteTo(&out); err != nil {
		return nil, fmt.Errorf("xmlexport: escribir: %w", err)
	}
	return out.Bytes(), nil
}

// Verify recalcula el digest de un documento exportado y lo compara con el declarado.
func Verify(xmlBytes []byte) (bool, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(xmlBytes); err != nil {
		return false, fmt.Errorf("xmlexport: parsear XML: %w", err)
	}
	root := doc.Root()
	if root == nil {
		return false, fmt.Errorf("xmlexport: documento sin raíz")
	}
	d := root.SelectElement(digestTag)
	if d == nil {
		return false, fmt.Errorf("xmlexport: documento sin %s", digestTag)
	}
	declared := d.Text()
	root.RemoveChild(d)

	actual, err := digestOf(root)
	if err != nil {
		return false, err
	}
	return actual == declared, nil
}

// digestOf canonicaliza el elemento (sin declaración XML) y devuelve SHA-256 en base64.
func digestOf(root *etree.Element) (string, error) {
	doc := etree.NewDocument()
	doc.SetRoot(root.Copy())
	raw, err := doc.WriteToBytes()
	if err != nil {
		return "", fmt.Errorf("xmlexport: serializar: %w", err)
	}
	canonical, err := canonicalizeXML(raw)
	if err != nil {
		return "", fmt.Errorf("xmlexport: canonicalizar: %w", err)
	}
	sum := sha256.Sum256(canonical)
	return base64.StdEncoding.EncodeToString(sum[:]), nil
}

func canonicalizeXML(data []byte) ([]byte, error) {
	dec := xml.NewDecoder(bytes.NewReader(data))
	dec.Entity = map[string]string{}
	return c14n.Canonicalize(dec)
}

// ── Construcción del documento ────────────────────────────────────────────────

func buildRoot(r *dto.ReportDTO) *etree.Element {
	root := etree.NewElement("RelatorioFinanceiro")
	root.CreateAttr("xmlns", Namespace)
	root.CreateAttr("periodo", r.Period)
	root.CreateAttr("geradoEm", r.GeneratedAt.Format(time.RFC3339))

	resumo := root.CreateElement("Resumo")
	resumo.CreateAttr("vendas", strconv.Itoa(r.SalesCount))
	resumo.CreateElement("Faturacao").SetText(r.Revenue.StringFixed(2))
	resumo.CreateElement("Lucro").SetText(r.Profit.StringFixed(2))
	resumo.CreateElement("Margem").SetText(r.Margin.StringFixed(4))
	resumo.CreateElement("Entradas").SetText(r.Income.StringFixed(2))
	resumo.CreateElement("Saidas").SetText(r.Expense.StringFixed(2))
	resumo.CreateElement("Saldo").SetText(r.NetCash.StringFixed(2))

	pagamentos := root.CreateElement("FormasPagamento")
	for _, p := range r.ByPayment {
		f := pagamentos.CreateElement("Forma")
		f.CreateAttr("metodo", string(p.Method))
		f.CreateAttr("vendas", strconv.Itoa(p.Count))
		f.CreateAttr("total", p.Total.StringFixed(2))
	}

	vendas := root.CreateElement("Vendas")
	for _, s := range r.Sales {
		v := vendas.CreateElement("Venda")
		v.CreateAttr("id", s.ID)
		v.CreateAttr("data", s.Date.Format(time.RFC3339))
		v.CreateAttr("operador", s.UserName)
		v.CreateAttr("pagamento", string(s.PaymentMethod))
		v.CreateAttr("total", s.Total.StringFixed(2))
		v.CreateAttr("lucro", s.Profit.StringFixed(2))
		for _, it := range s.Items {
			i := v.CreateElement("Item")
			i.CreateAttr("produto", it.ProductID)
			i.CreateAttr("quantidade", strconv.Itoa(it.Quantity))
			i.CreateAttr("preco", it.Price.StringFixed(2))
			i.CreateAttr("subtotal", it.Subtotal.StringFixed(2))
			i.SetText(it.ProductName)
		}
	}

	caixa := root.CreateElement("FluxoCaixa")
	for _, e := range r.CashEntries {
		m := caixa.CreateElement("Movimento")
		m.CreateAttr("id", e.ID)
		m.CreateAttr("tipo", string(e.Type))
		m.CreateAttr("data", e.Date.Format(time.RFC3339))
		m.CreateAttr("valor", e.Amount.StringFixed(2))
		m.SetText(e.Description)
	}
	return root
}
