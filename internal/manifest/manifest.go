package manifest

// BaseName is the manifest file name without extension.
const BaseName = "recipients_database"

// Columns is the column order shared by every manifest format.
var Columns = []string{"UUID", "Field1", "Field2", "Field3", "ImagePath", "OutputPath"}

// Row records one successfully rendered card.
type Row struct {
	Identifier string `json:"uuid"`
	Field1     string `json:"field1"`
	Field2     string `json:"field2"`
	Field3     string `json:"field3"`
	ImagePath  string `json:"image_path"`
	OutputPath string `json:"output_path"`
}

// Values returns the row in Columns order.
func (r Row) Values() []string {
	return []string{r.Identifier, r.Field1, r.Field2, r.Field3, r.ImagePath, r.OutputPath}
}

// Field is one named cell of a row.
type Field struct {
	Key   string
	Value string
}

// Fields returns the row as key/value pairs in Columns order.
func (r Row) Fields() []Field {
	vals := r.Values()
	out := make([]Field, len(Columns))
	for i, k := range Columns {
		out[i] = Field{Key: k, Value: vals[i]}
	}
	return out
}
