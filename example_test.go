package csv2pdf_test

import (
	"fmt"

	csv2pdf "github.com/alnah/go-csv2pdf"
)

func ExampleSegmenter_Segment() {
	table := csv2pdf.RawTable{
		{"account", "name", "id", "password", "serial"},
		{"taro@example.com", "Math", "u1", "p1", "s1"},
		{"", "Bio", "u2", "p2", "s2"},
	}

	bundles, skipped := csv2pdf.Segmenter{Layout: csv2pdf.LayoutFull}.Segment(table)
	for _, b := range bundles {
		fmt.Printf("%s: %d record(s)\n", b.Account, len(b.Records))
	}
	fmt.Printf("skipped: %d\n", skipped)
	// Output:
	// taro: 1 record(s)
	// skipped: 1
}

func ExampleLayoutForWidth() {
	layout, err := csv2pdf.LayoutForWidth(3)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(layout.Width, layout.HasSerial)
	// Output: 3 false
}
