package selection

import (
	"reflect"
	"testing"
)

func TestAcceptFilterAccepts(t *testing.T) {
	tests := []struct {
		name   string
		filter AcceptFilter
		fd     FileDescriptor
		want   bool
	}{
		{"empty filter accepts all", nil, FileDescriptor{Name: "a.bin"}, true},
		{"extension suffix", AcceptFilter{".png"}, FileDescriptor{Name: "x.png"}, true},
		{"extension mismatch", AcceptFilter{".png"}, FileDescriptor{Name: "y.jpg", MIMEType: "image/jpeg"}, false},
		{"mime wildcard", AcceptFilter{"image/*"}, FileDescriptor{Name: "y.jpg", MIMEType: "image/jpeg"}, true},
		{"mime wildcard without type", AcceptFilter{"image/*"}, FileDescriptor{Name: "y.jpg"}, false},
		{"mime fragment substring", AcceptFilter{"pdf"}, FileDescriptor{Name: "doc", MIMEType: "application/pdf"}, true},
		{"case sensitive", AcceptFilter{".PNG"}, FileDescriptor{Name: "x.png"}, false},
		{"suffix not prefix", AcceptFilter{".png"}, FileDescriptor{Name: ".png.txt"}, false},
		{"any of several", AcceptFilter{".gif", ".txt"}, FileDescriptor{Name: "notes.txt"}, true},
		{"bare star matches all", AcceptFilter{"*"}, FileDescriptor{Name: "anything"}, true},
		{"only trailing star stripped", AcceptFilter{"*.png"}, FileDescriptor{Name: "x.png"}, false},
		{"multiple trailing stars", AcceptFilter{"text/**"}, FileDescriptor{MIMEType: "text/plain"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.filter.Accepts(tt.fd); got != tt.want {
				t.Errorf("Accepts(%+v) = %v, want %v", tt.fd, got, tt.want)
			}
		})
	}
}

func TestAcceptFilterPatternOrderIndependent(t *testing.T) {
	files := []FileDescriptor{
		{Name: "a.png", MIMEType: "image/png"},
		{Name: "b.txt", MIMEType: "text/plain"},
		{Name: "c.pdf", MIMEType: "application/pdf"},
		{Name: "d", MIMEType: ""},
	}
	f1 := AcceptFilter{".png", "text/*", "pdf"}
	f2 := AcceptFilter{"pdf", ".png", "text/*"}

	for _, fd := range files {
		if f1.Accepts(fd) != f2.Accepts(fd) {
			t.Errorf("pattern order changed result for %q", fd.Name)
		}
	}
}

func TestAcceptFilterPartition(t *testing.T) {
	batch := []FileDescriptor{{Name: "y.jpg"}, {Name: "z.png"}, {Name: "w.png"}}
	accepted, rejected := AcceptFilter{".png"}.Partition(batch)

	wantAccepted := []FileDescriptor{{Name: "z.png"}, {Name: "w.png"}}
	wantRejected := []FileDescriptor{{Name: "y.jpg"}}
	if !reflect.DeepEqual(accepted, wantAccepted) {
		t.Errorf("accepted = %v, want %v", accepted, wantAccepted)
	}
	if !reflect.DeepEqual(rejected, wantRejected) {
		t.Errorf("rejected = %v, want %v", rejected, wantRejected)
	}
}

func TestAcceptFilterString(t *testing.T) {
	if got := (AcceptFilter{".png", "image/*"}).String(); got != ".png,image/*" {
		t.Errorf("String() = %q, want %q", got, ".png,image/*")
	}
	if got := AcceptFilter(nil).String(); got != "" {
		t.Errorf("String() = %q, want empty", got)
	}
}
