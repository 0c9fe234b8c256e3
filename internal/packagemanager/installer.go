package packagemanager

import "context"

// Feature package sets installed alongside the base dependency tree when the
// matching module was selected during scaffolding.
var (
	prismaPackages      = []string{"prisma", "@prisma/client"}
	userServicePackages = []string{"@techsavvyash/user-service"}
)

// PrismaPackages returns the npm packages backing the Prisma data layer.
func PrismaPackages() []string {
	return append([]string(nil), prismaPackages...)
}

// UserServicePackages returns the npm packages backing the user-service module.
func UserServicePackages() []string {
	return append([]string(nil), userServicePackages...)
}

// Installer performs post-generation dependency installation for a project.
// It is the install collaborator of the new-project pipeline.
type Installer struct{}

// Install runs the named manager's install in targetDir, extending the
// dependency tree with the Prisma and user-service packages when those
// modules were selected. An unknown manager name yields a configuration
// error before anything runs.
func (Installer) Install(ctx context.Context, targetDir, manager string, withPrisma, withUserService bool) error {
	m := Dispatch(manager)

	if err := m.Install(ctx, targetDir); err != nil {
		return err
	}

	var extra []string
	if withPrisma {
		extra = append(extra, prismaPackages...)
	}
	if withUserService {
		extra = append(extra, userServicePackages...)
	}
	if len(extra) == 0 {
		return nil
	}
	return m.Add(ctx, targetDir, extra...)
}
