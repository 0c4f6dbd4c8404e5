package xmac

import (
	"encoding"
	"encoding/json"
	"errors"
	"fmt"
	"testing"
)

// 编译期接口实现检查。
var (
	_ fmt.Stringer             = Addr{}
	_ encoding.TextMarshaler   = Addr{}
	_ encoding.TextUnmarshaler = (*Addr)(nil)
	_ json.Marshaler           = Addr{}
	_ json.Unmarshaler         = (*Addr)(nil)
)

func TestNew(t *testing.T) {
	addr, err := New(0x00, 0x10, 0x20, 0x30, 0x40, 0xff)
	if err != nil {
		t.Fatalf("New() unexpected error = %v", err)
	}
	want := Addr{bytes: [6]byte{0x00, 0x10, 0x20, 0x30, 0x40, 0xff}}
	if addr != want {
		t.Errorf("New() = %v, want %v", addr, want)
	}
}

func TestNew_OutOfRange(t *testing.T) {
	for octet := range 6 {
		for _, value := range []int{-1, 256, 1 << 20} {
			t.Run(fmt.Sprintf("octet%d_%d", octet, value), func(t *testing.T) {
				args := [6]int{}
				args[octet] = value
				_, err := New(args[0], args[1], args[2], args[3], args[4], args[5])
				if !errors.Is(err, ErrOctetRange) {
					t.Fatalf("New() error = %v, want ErrOctetRange", err)
				}
				var ve *ValidationError
				if !errors.As(err, &ve) {
					t.Fatalf("New() error type = %T, want *ValidationError", err)
				}
				if ve.Octet != octet || ve.Value != value {
					t.Errorf("ValidationError = {%d %d}, want {%d %d}", ve.Octet, ve.Value, octet, value)
				}
			})
		}
	}
}

func TestNew_ReportsFirstOffender(t *testing.T) {
	_, err := New(0, 300, 0, -5, 0, 0)
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("New() error = %v, want *ValidationError", err)
	}
	if ve.Octet != 1 {
		t.Errorf("ValidationError.Octet = %d, want 1", ve.Octet)
	}
}

func TestNew_Bounds(t *testing.T) {
	if _, err := New(0, 0, 0, 0, 0, 0); err != nil {
		t.Errorf("New(0...) error = %v", err)
	}
	if _, err := New(255, 255, 255, 255, 255, 255); err != nil {
		t.Errorf("New(255...) error = %v", err)
	}
}

func TestMustNew(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		if got := MustNew(0xff, 0xff, 0xff, 0xff, 0xff, 0xff); got != Broadcast() {
			t.Errorf("MustNew() = %v, want broadcast", got)
		}
	})

	t.Run("invalid_panics", func(t *testing.T) {
		defer func() {
			if r := recover(); r == nil {
				t.Errorf("MustNew(invalid) did not panic")
			}
		}()
		MustNew(0, 0, 0, 0, 0, 256)
	})
}

func TestAddr_Compare(t *testing.T) {
	tests := []struct {
		name string
		a    Addr
		b    Addr
		want int
	}{
		{"equal", MustParse("aa:bb:cc:dd:ee:ff"), MustParse("aa:bb:cc:dd:ee:ff"), 0},
		{"less_first_byte", MustParse("00:bb:cc:dd:ee:ff"), MustParse("aa:bb:cc:dd:ee:ff"), -1},
		{"greater_first_byte", MustParse("ff:bb:cc:dd:ee:ff"), MustParse("aa:bb:cc:dd:ee:ff"), 1},
		{"less_last_byte", MustParse("aa:bb:cc:dd:ee:00"), MustParse("aa:bb:cc:dd:ee:ff"), -1},
		{"greater_last_byte", MustParse("aa:bb:cc:dd:ee:ff"), MustParse("aa:bb:cc:dd:ee:00"), 1},
		{"zero_vs_nonzero", Addr{}, MustParse("00:00:00:00:00:01"), -1},
		{"both_zero", Addr{}, Addr{}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Compare(tt.b); got != tt.want {
				t.Errorf("Compare() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAddr_Bytes(t *testing.T) {
	addr := MustParse("aa:bb:cc:dd:ee:ff")
	bytes := addr.Bytes()
	want := [6]byte{0xaa, 0xbb, 0xcc, 0xdd, 0xee, 0xff}

	if bytes != want {
		t.Errorf("Bytes() = %v, want %v", bytes, want)
	}

	// 修改返回值不影响原地址
	bytes[0] = 0x00
	if addr.bytes[0] == 0x00 {
		t.Errorf("Bytes() returned reference instead of copy")
	}
}

func TestAddr_Octet(t *testing.T) {
	addr := MustParse("00:10:20:30:40:50")
	for i := range 6 {
		if got, want := addr.Octet(i), byte(i*0x10); got != want {
			t.Errorf("Octet(%d) = %#02x, want %#02x", i, got, want)
		}
	}
}

func TestAddrFrom6(t *testing.T) {
	bytes := [6]byte{0xaa, 0xbb, 0xcc, 0xdd, 0xee, 0xff}
	addr := AddrFrom6(bytes)

	if addr.bytes != bytes {
		t.Errorf("AddrFrom6() = %v, want %v", addr.bytes, bytes)
	}
}

func TestAddr_MapKey(t *testing.T) {
	seen := map[Addr]struct{}{}
	seen[MustParse("AA:BB:CC:DD:EE:FF")] = struct{}{}
	seen[MustParse("aa:bb:cc:dd:ee:ff")] = struct{}{}
	if len(seen) != 1 {
		t.Errorf("equal addresses produced %d map keys, want 1", len(seen))
	}
}
