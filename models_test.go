package deviceid

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveModelName(t *testing.T) {
	tests := []struct {
		name string
		id   string
		want string
	}{
		{name: "iphone 6s", id: "iPhone8,1", want: "iPhone 6s"},
		{name: "iphone 12", id: "iPhone13,2", want: "iPhone 12"},
		{name: "iphone se 3", id: "iPhone14,6", want: "iPhone SE 3rd Gen"},
		{name: "watch cellular", id: "Watch3,2", want: "Apple Watch Series 3 42mm (GPS+Cellular)"},
		{name: "watch se", id: "Watch5,10", want: "Apple Watch SE 44mm (GPS)"},
		{name: "ipod", id: "iPod9,1", want: "iPod 7th Gen"},
		{name: "ipad quoted", id: "iPad8,4", want: `iPad Pro 3rd Gen (11", WiFi+Cellular, 1TB)`},
		{name: "simulator 32", id: "i386", want: "iOS Simulator 32-bit"},
		{name: "simulator 64", id: "x86_64", want: "iOS Simulator 64-bit"},
		{name: "simulator m1", id: "arm64", want: "iOS Simulator M1"},
		{name: "unknown", id: "UnknownDevice99,9", want: "UnknownDevice99,9"},
		{name: "empty", id: "", want: ""},
		{name: "case sensitive", id: "iphone8,1", want: "iphone8,1"},
		{name: "no trimming", id: " iPhone8,1", want: " iPhone8,1"},
		{name: "trailing nul", id: "iPhone8,1\x00", want: "iPhone8,1\x00"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveModelName(tt.id))
		})
	}
}

func TestResolveModelName_SharedNames(t *testing.T) {
	for _, id := range []string{"iPad13,4", "iPad13,5", "iPad13,6", "iPad13,7"} {
		assert.Equal(t, `iPad Pro 3rd Gen (11")`, ResolveModelName(id), id)
	}
	for _, id := range []string{"iPad13,8", "iPad13,9", "iPad13,10", "iPad13,11"} {
		assert.Equal(t, `iPad Pro 5th Gen (12.9")`, ResolveModelName(id), id)
	}
}

func TestResolveModelName_Table(t *testing.T) {
	for id, name := range modelNames {
		assert.NotEmpty(t, name, id)
		assert.Equal(t, name, ResolveModelName(id))
		// 两次调用结果一致
		assert.Equal(t, ResolveModelName(id), ResolveModelName(id))
	}
}

func TestKnownModel(t *testing.T) {
	name, ok := KnownModel("iPhone13,2")
	assert.True(t, ok)
	assert.Equal(t, "iPhone 12", name)

	name, ok = KnownModel("iPhone99,1")
	assert.False(t, ok)
	assert.Empty(t, name)
}
