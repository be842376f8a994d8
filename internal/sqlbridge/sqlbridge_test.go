package sqlbridge

import "testing"

func TestOpenRunsScalarFunctions(t *testing.T) {
	db, err := Open()
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	var instant int64
	row := db.QueryRow("SELECT PARSE_DT('yyyy-MM-dd', '2017-03-27')")
	if err := row.Scan(&instant); err != nil {
		t.Fatal(err)
	}
	if instant <= 0 {
		t.Fatalf("PARSE_DT returned %d, want a positive instant", instant)
	}

	var text string
	row = db.QueryRow("SELECT FORMAT_DT('yyyy-MM-dd', ?)", instant)
	if err := row.Scan(&text); err != nil {
		t.Fatal(err)
	}
	if text != "2017-03-27" {
		t.Fatalf("FORMAT_DT = %q, want 2017-03-27", text)
	}
}
