package careerviet

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestListingURL(t *testing.T) {
	assert.Equal(t,
		"https://www.careerviet.vn/viec-lam/data+analyst-k-vi.html",
		listingURL("Data Analyst", 1),
	)
	assert.Equal(t,
		"https://www.careerviet.vn/viec-lam/data+analyst-k-trang-3-vi.html",
		listingURL("Data Analyst", 3),
	)
}

func TestTidy(t *testing.T) {
	assert.Equal(t, "Data analyst", tidy("  Data​  analyst \n"))
	assert.Equal(t, "", tidy("   "))
}
