package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestServiceType_RequiredSlots(t *testing.T) {
	assert.Equal(t, 1, ServiceManicure.RequiredSlots())
	assert.Equal(t, 1, ServicePedicure.RequiredSlots())
	assert.Equal(t, 2, ServiceManiPedi.RequiredSlots())
	assert.Equal(t, 3, ServiceFullSet.RequiredSlots())
	assert.Equal(t, 0, ServiceType("massage").RequiredSlots())
}

func TestServiceType_RequiredLinkedSlots(t *testing.T) {
	assert.Equal(t, 0, ServiceManicure.RequiredLinkedSlots())
	assert.Equal(t, 1, ServiceManiPedi.RequiredLinkedSlots())
	assert.Equal(t, 2, ServiceFullSet.RequiredLinkedSlots())
	assert.Equal(t, 0, ServiceType("").RequiredLinkedSlots())
}

func TestServiceType_IsValid(t *testing.T) {
	assert.True(t, ServiceManicure.IsValid())
	assert.True(t, ServiceFullSet.IsValid())
	assert.False(t, ServiceType("").IsValid())
	assert.False(t, ServiceType("MANICURE").IsValid())
}
