package store

import (
	database_sql "database/sql"

	"github.com/gimlet-io/gerrit-slack/pkg/model"
	"github.com/gimlet-io/gerrit-slack/pkg/store/sql"
	"github.com/pkg/errors"
	"github.com/russross/meddler"
)

// SaveProjectConfig creates or updates the config of a project
func (db *Store) SaveProjectConfig(config *model.ProjectConfig) error {
	stored, err := db.projectConfig(config.Project)
	if err != nil {
		switch err {
		case database_sql.ErrNoRows:
			config.ID = 0
			return meddler.Insert(db, "project_configs", config)
		default:
			return err
		}
	}

	config.ID = stored.ID
	return meddler.Update(db, "project_configs", config)
}

// ProjectConfig returns the config of a project.
// Projects without own config inherit the config of All-Projects,
// and get the disabled default config if that is missing too.
func (db *Store) ProjectConfig(project string) (*model.ProjectConfig, error) {
	config, err := db.projectConfig(project)
	if err == nil {
		return config, nil
	}
	if err != database_sql.ErrNoRows {
		return nil, errors.Wrapf(err, "cannot load config of %s", project)
	}

	if project != model.AllProjects {
		inherited, err := db.projectConfig(model.AllProjects)
		if err == nil {
			inherited.ID = 0
			inherited.Project = project
			return inherited, nil
		}
		if err != database_sql.ErrNoRows {
			return nil, errors.Wrapf(err, "cannot load config of %s", model.AllProjects)
		}
	}

	return model.DefaultProjectConfig(project), nil
}

func (db *Store) projectConfig(project string) (*model.ProjectConfig, error) {
	stmt := sql.Stmt(db.driver, sql.SelectProjectConfig)
	data := new(model.ProjectConfig)
	err := meddler.QueryRow(db, data, stmt, project)
	return data, err
}

// ProjectConfigs returns the stored project configs
func (db *Store) ProjectConfigs() ([]*model.ProjectConfig, error) {
	stmt := sql.Stmt(db.driver, sql.SelectProjectConfigs)
	var data []*model.ProjectConfig
	err := meddler.QueryAll(db, &data, stmt)
	return data, err
}

func (db *Store) DeleteProjectConfig(project string) error {
	stmt := sql.Stmt(db.driver, sql.DeleteProjectConfig)
	_, err := db.Exec(stmt, project)
	return err
}
