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

package ddl

const createTableProjectConfigs = "create-table-project-configs"
const createTableNotifications = "create-table-notifications"
const createIndexNotificationsCreated = "create-index-notifications-created"

type migration struct {
	name string
	stmt string
}

var migrations = map[string][]migration{
	"sqlite": {
		{
			name: createTableProjectConfigs,
			stmt: `
CREATE TABLE IF NOT EXISTS project_configs (
id                           INTEGER PRIMARY KEY AUTOINCREMENT,
project                      TEXT,
enabled                      BOOLEAN DEFAULT false,
webhook_url                  TEXT DEFAULT '',
channel                      TEXT DEFAULT 'general',
ignore_pattern               TEXT DEFAULT '',
publish_on_patch_set_created BOOLEAN DEFAULT true,
publish_on_change_merged     BOOLEAN DEFAULT true,
publish_on_reviewer_added    BOOLEAN DEFAULT true,
publish_on_private_to_public BOOLEAN DEFAULT true,
publish_on_wip_ready         BOOLEAN DEFAULT true,
ignore_unchanged_patch_set   BOOLEAN DEFAULT true,
ignore_private_patch_set     BOOLEAN DEFAULT true,
ignore_wip_patch_set         BOOLEAN DEFAULT true,
UNIQUE(project)
);
`,
		},
		{
			name: createTableNotifications,
			stmt: `
CREATE TABLE IF NOT EXISTS notifications (
id            TEXT,
project       TEXT,
change_number INTEGER,
kind          TEXT,
status        TEXT,
status_desc   TEXT DEFAULT '',
created       INTEGER DEFAULT 0,
UNIQUE(id)
);
`,
		},
		{
			name: createIndexNotificationsCreated,
			stmt: `CREATE INDEX IF NOT EXISTS notifications_created ON notifications(created);`,
		},
	},
	"postgres": {
		{
			name: createTableProjectConfigs,
			stmt: `
CREATE TABLE IF NOT EXISTS project_configs (
id                           SERIAL,
project                      TEXT,
enabled                      BOOLEAN DEFAULT false,
webhook_url                  TEXT DEFAULT '',
channel                      TEXT DEFAULT 'general',
ignore_pattern               TEXT DEFAULT '',
publish_on_patch_set_created BOOLEAN DEFAULT true,
publish_on_change_merged     BOOLEAN DEFAULT true,
publish_on_reviewer_added    BOOLEAN DEFAULT true,
publish_on_private_to_public BOOLEAN DEFAULT true,
publish_on_wip_ready         BOOLEAN DEFAULT true,
ignore_unchanged_patch_set   BOOLEAN DEFAULT true,
ignore_private_patch_set     BOOLEAN DEFAULT true,
ignore_wip_patch_set         BOOLEAN DEFAULT true,
UNIQUE(id),
UNIQUE(project)
);
`,
		},
		{
			name: createTableNotifications,
			stmt: `
CREATE TABLE IF NOT EXISTS notifications (
id            TEXT,
project       TEXT,
change_number INTEGER,
kind          TEXT,
status        TEXT,
status_desc   TEXT DEFAULT '',
created       INTEGER DEFAULT 0,
UNIQUE(id)
);
`,
		},
		{
			name: createIndexNotificationsCreated,
			stmt: `CREATE INDEX IF NOT EXISTS notifications_created ON notifications(created);`,
		},
	},
}
