// Copyright (C) 2025 l3montree GmbH
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package accesscontrol

import (
	"fmt"

	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
	"github.com/l3montree-dev/issuetracker/database/models"
	"github.com/l3montree-dev/issuetracker/shared"
)

var _ shared.AccessControl = &casbinRBAC{}

// roles inherit every permission of the roles listed after them
var roleHierarchy = []models.UserRole{
	models.UserRoleSuperAdmin,
	models.UserRoleAdmin,
	models.UserRoleManager,
	models.UserRoleEmployee,
}

const rbacModel = `
[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act

[role_definition]
g = _, _

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = g(r.sub, p.sub) && r.obj == p.obj && r.act == p.act
`

type permission struct {
	object  shared.Object
	actions []shared.Action
}

var allActions = []shared.Action{shared.ActionCreate, shared.ActionRead, shared.ActionUpdate, shared.ActionDelete}

// permissions granted directly to a role, inherited ones are not repeated
var rolePermissions = map[models.UserRole][]permission{
	models.UserRoleEmployee: {
		{shared.ObjectOrganization, []shared.Action{shared.ActionRead}},
		{shared.ObjectDepartment, []shared.Action{shared.ActionRead}},
		{shared.ObjectProject, []shared.Action{shared.ActionRead}},
		{shared.ObjectUser, []shared.Action{shared.ActionRead}},
		{shared.ObjectIssue, []shared.Action{shared.ActionCreate, shared.ActionRead, shared.ActionUpdate}},
		{shared.ObjectComment, allActions},
		{shared.ObjectAttachment, allActions},
		{shared.ObjectStatistics, []shared.Action{shared.ActionRead}},
	},
	models.UserRoleManager: {
		{shared.ObjectProject, []shared.Action{shared.ActionCreate, shared.ActionUpdate, shared.ActionDelete}},
		{shared.ObjectIssue, []shared.Action{shared.ActionDelete}},
		{shared.ObjectOrgAdmin, []shared.Action{shared.ActionRead}},
	},
	models.UserRoleAdmin: {
		{shared.ObjectDepartment, []shared.Action{shared.ActionCreate, shared.ActionUpdate, shared.ActionDelete}},
		{shared.ObjectUser, []shared.Action{shared.ActionCreate, shared.ActionUpdate, shared.ActionDelete}},
		{shared.ObjectOrganization, []shared.Action{shared.ActionUpdate}},
		{shared.ObjectAccessRequest, []shared.Action{shared.ActionRead, shared.ActionUpdate}},
	},
	models.UserRoleSuperAdmin: {
		{shared.ObjectOrganization, []shared.Action{shared.ActionCreate, shared.ActionDelete}},
	},
}

type casbinRBAC struct {
	enforcer *casbin.SyncedEnforcer
}

func roleSubject(role models.UserRole) string {
	return "role::" + string(role)
}

func NewCasbinRBAC() (*casbinRBAC, error) {
	m, err := model.NewModelFromString(rbacModel)
	if err != nil {
		return nil, fmt.Errorf("could not parse rbac model: %w", err)
	}

	e, err := casbin.NewSyncedEnforcer(m)
	if err != nil {
		return nil, err
	}
	e.EnableLog(false)

	policies := make([][]string, 0)
	for role, perms := range rolePermissions {
		for _, p := range perms {
			for _, act := range p.actions {
				policies = append(policies, []string{roleSubject(role), "obj::" + string(p.object), "act::" + string(act)})
			}
		}
	}
	if _, err := e.AddPolicies(policies); err != nil {
		return nil, fmt.Errorf("could not add policies: %w", err)
	}

	groupings := make([][]string, 0, len(roleHierarchy)-1)
	for i := 0; i < len(roleHierarchy)-1; i++ {
		groupings = append(groupings, []string{roleSubject(roleHierarchy[i]), roleSubject(roleHierarchy[i+1])})
	}
	if _, err := e.AddGroupingPolicies(groupings); err != nil {
		return nil, fmt.Errorf("could not add role hierarchy: %w", err)
	}

	return &casbinRBAC{enforcer: e}, nil
}

func (c *casbinRBAC) IsAllowed(role models.UserRole, object shared.Object, action shared.Action) (bool, error) {
	return c.enforcer.Enforce(roleSubject(role), "obj::"+string(object), "act::"+string(action))
}
