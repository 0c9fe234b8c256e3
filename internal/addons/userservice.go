package addons

import "context"

// UserService wires the user-service module into a generated project: a
// controller, service, and module under src/users.
type UserService struct{}

const usersModule = `import { Module } from '@nestjs/common';
import { UsersController } from './users.controller';
import { UsersService } from './users.service';

@Module({
  controllers: [UsersController],
  providers: [UsersService],
  exports: [UsersService],
})
export class UsersModule {}
`

const usersController = `import { Body, Controller, Get, Param, Post } from '@nestjs/common';
import { UsersService } from './users.service';

@Controller('users')
export class UsersController {
  constructor(private readonly users: UsersService) {}

  @Get()
  findAll() {
    return this.users.findAll();
  }

  @Get(':id')
  findOne(@Param('id') id: string) {
    return this.users.findOne(id);
  }

  @Post()
  create(@Body() dto: { email: string; name?: string }) {
    return this.users.create(dto);
  }
}
`

const usersService = `import { Injectable, NotFoundException } from '@nestjs/common';

export interface User {
  id: string;
  email: string;
  name?: string;
}

@Injectable()
export class UsersService {
  private readonly users = new Map<string, User>();
  private nextId = 1;

  findAll(): User[] {
    return [...this.users.values()];
  }

  findOne(id: string): User {
    const user = this.users.get(id);
    if (!user) {
      throw new NotFoundException('user ' + id + ' not found');
    }
    return user;
  }

  create(dto: { email: string; name?: string }): User {
    const user: User = { id: String(this.nextId++), ...dto };
    this.users.set(user.id, user);
    return user;
  }
}
`

// Create writes the user-service files into targetDir, skipping any the
// operator already created.
func (UserService) Create(_ context.Context, targetDir, _ string) error {
	files := map[string]string{
		"src/users/users.module.ts":     usersModule,
		"src/users/users.controller.ts": usersController,
		"src/users/users.service.ts":    usersService,
	}

	_, err := writeProjectFiles(targetDir, files, 0o644)
	return err
}
