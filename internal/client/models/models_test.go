package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUser_DisplayName(t *testing.T) {
	assert.Equal(t, "Ally", User{Username: "alice", Nickname: "Ally"}.DisplayName())
	assert.Equal(t, "alice", User{Username: "alice"}.DisplayName())
}

func TestMenuTree_DecodeAndWalk(t *testing.T) {
	raw := `[
	  {"id":1,"name":"System","path":"/system","children":[
	    {"id":2,"parent_id":1,"name":"Users","path":"/system/users"},
	    {"id":3,"parent_id":1,"name":"Roles","path":"/system/roles","children":[
	      {"id":4,"parent_id":3,"name":"Assign","path":"/system/roles/assign"}
	    ]}
	  ]},
	  {"id":5,"name":"Orders","path":"/orders"}
	]`
	var menus []Menu
	require.NoError(t, json.Unmarshal([]byte(raw), &menus))

	var visited []uint
	var depths []int
	Walk(menus, func(m Menu, depth int) {
		visited = append(visited, m.ID)
		depths = append(depths, depth)
	})
	assert.Equal(t, []uint{1, 2, 3, 4, 5}, visited)
	assert.Equal(t, []int{0, 1, 1, 2, 0}, depths)

	assert.True(t, HasPath(menus, "/system/roles/assign"))
	assert.False(t, HasPath(menus, "/nope"))
}

func TestSortByID(t *testing.T) {
	recs := []TranscriptRecord{{ID: 3}, {ID: 1}, {ID: 2}}
	SortByID(recs)
	assert.Equal(t, int64(1), recs[0].ID)
	assert.Equal(t, int64(3), recs[2].ID)
}

func TestChatRole_Valid(t *testing.T) {
	assert.True(t, ChatRoleUser.Valid())
	assert.True(t, ChatRoleAssistant.Valid())
	assert.False(t, ChatRole("ai").Valid())
}

func TestMenuUpdateRequest_SendsExplicitZero(t *testing.T) {
	zero := 0
	b, err := json.Marshal(MenuUpdateRequest{Status: &zero})
	require.NoError(t, err)
	assert.JSONEq(t, `{"status":0}`, string(b))
}
