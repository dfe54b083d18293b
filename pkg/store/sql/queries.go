// Copyright 2019 Laszlo Fogas
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package sql

const SelectProjectConfig = "select-project-config"
const SelectProjectConfigs = "select-project-configs"
const DeleteProjectConfig = "delete-project-config"
const SelectNotifications = "select-notifications"

var queries = map[string]map[string]string{
	"sqlite": {
		SelectProjectConfig: `
SELECT id, project, enabled, webhook_url, channel, ignore_pattern,
publish_on_patch_set_created, publish_on_change_merged, publish_on_reviewer_added,
publish_on_private_to_public, publish_on_wip_ready,
ignore_unchanged_patch_set, ignore_private_patch_set, ignore_wip_patch_set
FROM project_configs
WHERE project = ?;
`,
		SelectProjectConfigs: `
SELECT id, project, enabled, webhook_url, channel, ignore_pattern,
publish_on_patch_set_created, publish_on_change_merged, publish_on_reviewer_added,
publish_on_private_to_public, publish_on_wip_ready,
ignore_unchanged_patch_set, ignore_private_patch_set, ignore_wip_patch_set
FROM project_configs
ORDER BY project;
`,
		DeleteProjectConfig: `
DELETE FROM project_configs WHERE project = ?;
`,
		SelectNotifications: `
SELECT id, project, change_number, kind, status, status_desc, created
FROM notifications
ORDER BY created DESC
LIMIT ?;
`,
	},
	"postgres": {
		SelectProjectConfig: `
SELECT id, project, enabled, webhook_url, channel, ignore_pattern,
publish_on_patch_set_created, publish_on_change_merged, publish_on_reviewer_added,
publish_on_private_to_public, publish_on_wip_ready,
ignore_unchanged_patch_set, ignore_private_patch_set, ignore_wip_patch_set
FROM project_configs
WHERE project = $1;
`,
		SelectProjectConfigs: `
SELECT id, project, enabled, webhook_url, channel, ignore_pattern,
publish_on_patch_set_created, publish_on_change_merged, publish_on_reviewer_added,
publish_on_private_to_public, publish_on_wip_ready,
ignore_unchanged_patch_set, ignore_private_patch_set, ignore_wip_patch_set
FROM project_configs
ORDER BY project;
`,
		DeleteProjectConfig: `
DELETE FROM project_configs WHERE project = $1;
`,
		SelectNotifications: `
SELECT id, project, change_number, kind, status, status_desc, created
FROM notifications
ORDER BY created DESC
LIMIT $1;
`,
	},
}

// Stmt returns the named query of the database driver
func Stmt(driver string, name string) string {
	return queries[driver][name]
}
