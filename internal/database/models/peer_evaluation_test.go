package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPeerEvaluationAddJointTask(t *testing.T) {
	pe := &PeerEvaluation{}

	assert.True(t, pe.AddJointTask("KPI-1"))
	assert.True(t, pe.AddJointTask("KPI-2"))
	assert.False(t, pe.AddJointTask("KPI-1"))

	assert.Equal(t, []string{"KPI-1", "KPI-2"}, []string(pe.JointTasks))
}

func TestEmployeeHasEmail(t *testing.T) {
	assert.True(t, (&Employee{Email: "a@example.com"}).HasEmail())
	assert.False(t, (&Employee{Email: "   "}).HasEmail())
	assert.False(t, (&Employee{}).HasEmail())
}

func TestPeriodFinal(t *testing.T) {
	assert.False(t, (&Period{}).Final())
	assert.True(t, (&Period{IsFinal: boolPtr(true)}).Final())
	assert.False(t, (&Period{IsFinal: boolPtr(false)}).Final())
}
