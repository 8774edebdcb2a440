// Package dataset carrega conjuntos de dados de vendas a partir de arquivos JSON
package dataset

import (
	"io"
	"os"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/vfg2006/sales-performance-api/internal/usecases/analyzing"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Decode lê o dataset no formato {"sellers": [...], "products": [...], "purchase_records": [...]}.
// Coleções ausentes no JSON ficam nil e são rejeitadas depois pela validação da análise.
func Decode(r io.Reader) (*analyzing.Dataset, error) {
	var data analyzing.Dataset
	if err := json.NewDecoder(r).Decode(&data); err != nil {
		return nil, errors.Wrap(err, "erro ao decodificar dataset")
	}

	return &data, nil
}

// LoadFile abre e decodifica um dataset salvo em disco
func LoadFile(path string) (*analyzing.Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao abrir dataset %s", path)
	}
	defer f.Close()

	return Decode(f)
}
