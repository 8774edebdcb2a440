package analyzing

// Validate rejeita entradas estruturalmente inválidas: dataset ausente,
// coleção ausente ou coleção vazia. Campos individuais não são verificados.
func Validate(dataset *Dataset) error {
	if dataset == nil {
		return newInvalidInputError("", "dataset ausente")
	}

	collections := []struct {
		name   string
		isNil  bool
		length int
	}{
		{"sellers", dataset.Sellers == nil, len(dataset.Sellers)},
		{"products", dataset.Products == nil, len(dataset.Products)},
		{"purchase_records", dataset.PurchaseRecords == nil, len(dataset.PurchaseRecords)},
	}

	for _, c := range collections {
		if c.isNil {
			return newInvalidInputError(c.name, "ausente")
		}
		if c.length == 0 {
			return newInvalidInputError(c.name, "vazio")
		}
	}

	return nil
}
