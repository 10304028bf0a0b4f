package lesson

// Lessons returns the built-in lessons in display order.
func Lessons() []Lesson {
	return []Lesson{
		{
			ID:          1,
			Title:       "Type Annotations",
			Description: "TypeScript allows you to define types for variables, function parameters, and return values.",
			Code:        typeAnnotationsCode,
			Lang:        "typescript",
		},
		{
			ID:          2,
			Title:       "Interfaces",
			Description: "Interfaces define the structure of objects, making your code more predictable and self-documenting.",
			Code:        interfacesCode,
			Lang:        "typescript",
		},
		{
			ID:          3,
			Title:       "Generics",
			Description: "Generics allow you to create reusable components that work with multiple types.",
			Code:        genericsCode,
			Lang:        "typescript",
		},
		{
			ID:          4,
			Title:       "Union Types",
			Description: "Union types allow a value to be one of several types.",
			Code:        unionTypesCode,
			Lang:        "typescript",
		},
		{
			ID:          5,
			Title:       "React with TypeScript - Function Components",
			Description: "Using TypeScript with React enhances type safety and developer experience in your components.",
			Code:        functionComponentCode,
			Lang:        "tsx",
		},
		{
			ID:          6,
			Title:       "React with TypeScript - Class Components",
			Description: "Discover how to use TypeScript in React class components for better type safety.",
			Code:        classComponentCode,
			Lang:        "tsx",
		},
	}
}

const typeAnnotationsCode = `let name: string = "TypeScript";
let age: number = 25;
let isActive: boolean = true;`

const interfacesCode = `interface User {
  id: number;
  name: string;
  email?: string; // Optional property
}`

const genericsCode = `function identity<T>(arg: T): T {
  return arg;
}

const result = identity<string>("Hello");`

const unionTypesCode = `type Status = "loading" | "success" | "error";
let currentStatus: Status = "loading";

function printId(id: number | string) {
  console.log("ID:", id);
}`

const functionComponentCode = `import React from "react";
import { useState, useEffect } from "react";

type User = {
  name: string;
  email: string;
  isLoggedIn: boolean;
  age: number;
  hobbies: {
    id: number;
    title: string;
  };
  meta: Record<string, unknown>
};

type UserProps = {
  area: string;
};

const initialForm = {
  name: "Johnny",
  email: "john@test.com",
  age: 23,
  isLoggedIn: true,
  hobbies: {
    id: 2,
    title: "fishing",
  },
  meta: {
    favoriteFood: 'pizza'
  }
};

const UserComponent: React.FC<UserProps> = ({ area = "chicago" }) => {
  const [user, setUser] = useState<User>(initialForm);

  useEffect(() => {
    const fetchedUser = {
      name: "kano",
      email: "kano@yahoo.com",
      age: 12,
      isLoggedIn: false,
      hobbies: {
        id: 4,
        title: "logging",
      },
      meta: {
        favoriteFood: 'Pasta'
      }
    }
    setUser(fetchedUser);
  }, [user]);

  return (
    <div>
      Testing User Component
      <br />
      User Name: {user.name}
      <br />
      User Email: {user.email}
      <br />
      User Area: {area}
      <br/>
      User Favorite Food: {user.meta.favoriteFood as string}
    </div>
  );
};`

const classComponentCode = `import React from "react";

type User = {
  user: {
    name: string;
    email?: string;
    age: number;
    isLoggedIn: boolean;
  };
  meta: Record<string, unknown>;
};

type UserProps = {
  area: string;
};

class UserComponent extends React.Component<UserProps, User> {
  static defaultProps = {
    area: "chicago",
  };
  constructor(props: UserProps) {
    super(props);
    this.state = {
      user: {
        name: "diana",
        age: 32,
        isLoggedIn: true,
      },
      meta: {
        role: "editor",
        subscribed: true,
      },
    };
  }

  componentDidMount(): void {
    const metaObject = {
      role: "admin",
      subscribed: false,
    };

    const fetchedUser = {
      name: "sonya blade",
      email: "sonya@gmail.com",
      age: 72,
      isLoggedIn: true,
    };
    this.setState({ ...this.state, user: fetchedUser });
    this.setState({ meta: metaObject });
  }

  getNameOfUser = (u: User): string => {
    return u.user.name;
  };

  render(): React.ReactNode {
    return (
      <div>
        Hello World <br />
        Name: {this.state.user.name}
        <br />
        Email: {this.state.user.email}
        <br />
        <h3>Meta Info</h3>
        Role: {this.state.meta.role as string}
      </div>
    );
  }
}`
